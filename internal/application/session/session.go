// Package session mantiene la sesión auth del cliente: el usuario actual, su
// persistencia durable y las transiciones login/OTP/reset/logout.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
	"github.com/toslinrazafy/cosmetique-client/pkg/logger"
)

// State estado del ciclo de vida de la sesión.
type State string

const (
	StateAnonymous     State = "anonymous"
	StatePendingOTP    State = "pending-otp"
	StateAuthenticated State = "authenticated"
)

// Storage persistencia durable del usuario (un solo valor).
type Storage interface {
	Save(user *entity.User) error
	Load() (*entity.User, error)
	Clear() error
}

// Store es el store de sesión a escala de aplicación. Comparte el contrato
// de slot loading/error de los stores de recursos.
type Store struct {
	mu      sync.Mutex
	user    *entity.User
	state   State
	loading bool
	err     error

	api     *rest.Client
	storage Storage
	log     *logger.Logger
}

// NewStore construye el store de sesión en estado anonymous.
func NewStore(api *rest.Client, storage Storage, log *logger.Logger) *Store {
	return &Store{api: api, storage: storage, log: log, state: StateAnonymous}
}

// Restore relee la sesión persistida al arrancar y restablece authenticated
// sin validación de red (vigente hasta que el backend demuestre lo contrario).
func (s *Store) Restore() *entity.User {
	user, err := s.storage.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("session: lecture de la session persistée")
		return nil
	}
	if user == nil {
		return nil
	}
	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.log.Info().Int64("user_id", user.ID).Msg("session restaurée")
	return user
}

// Current devuelve el usuario actual (nil si anónimo).
func (s *Store) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// State devuelve el estado actual del ciclo de vida.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status devuelve loading y error del último intento.
func (s *Store) Status() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.err
}

// Login establece authenticated directamente y persiste el usuario.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.User, error) {
	s.begin()
	defer s.finish()

	body := dto.LoginRequest{Email: email, Password: password}
	var resp dto.LoginResponse
	if err := s.api.Post(ctx, "/auth/login", nil, body, "Erreur lors de la connexion", &resp); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.establish(&resp.User)
	return &resp.User, nil
}

// Register lanza el reto OTP del lado servidor; no crea sesión. Devuelve el
// email retado y deja la sesión en pending-otp.
func (s *Store) Register(ctx context.Context, payload dto.RegisterRequest) (string, error) {
	s.begin()
	defer s.finish()

	var resp dto.RegisterResponse
	if err := s.api.Post(ctx, "/auth/register", nil, payload, "Erreur lors de l'inscription", &resp); err != nil {
		s.setErr(err)
		return "", err
	}
	s.mu.Lock()
	s.state = StatePendingOTP
	s.mu.Unlock()
	return resp.Email, nil
}

// VerifyOTP canjea un código válido por una sesión.
func (s *Store) VerifyOTP(ctx context.Context, email, code string, payload dto.RegisterRequest) (*entity.User, error) {
	s.begin()
	defer s.finish()

	body := dto.VerifyOTPRequest{Email: email, Code: code, User: payload}
	var user entity.User
	if err := s.api.Post(ctx, "/auth/verify-otp", nil, body, "Code OTP invalide", &user); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.establish(&user)
	return &user, nil
}

// RequestPasswordReset pide el código de reinicio; no toca la sesión.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	s.begin()
	defer s.finish()

	body := dto.ResetPasswordRequest{Email: email}
	fallback := "Erreur lors de la demande de réinitialisation"
	if err := s.api.Post(ctx, "/auth/reset-password/request", nil, body, fallback, nil); err != nil {
		s.setErr(err)
		return err
	}
	return nil
}

// ConfirmPasswordReset confirma el reinicio con el código; no toca la sesión.
func (s *Store) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	s.begin()
	defer s.finish()

	body := dto.ResetPasswordConfirm{Email: email, Code: code, NewPassword: newPassword}
	fallback := "Erreur lors de la réinitialisation"
	if err := s.api.Post(ctx, "/auth/reset-password/confirm", nil, body, fallback, nil); err != nil {
		s.setErr(err)
		return err
	}
	return nil
}

// Logout desmonta la sesión y limpia el almacenamiento durable. Solo en
// éxito: un logout fallido conserva la sesión y propaga el error.
func (s *Store) Logout(ctx context.Context, email string) error {
	s.begin()
	defer s.finish()

	body := dto.LogoutRequest{Email: email}
	if err := s.api.Post(ctx, "/auth/logout", nil, body, "Erreur lors de la déconnexion", nil); err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("session: nettoyage du stockage")
	}
	return nil
}

// UpdateProfile actualiza al usuario actual y re-persiste el objeto devuelto.
func (s *Store) UpdateProfile(ctx context.Context, payload dto.UserForm) (*entity.User, error) {
	current := s.Current()
	if current == nil {
		return nil, domain.ErrNoSession
	}
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/admin/users/%d", current.ID)
	var updated entity.User
	fallback := "Erreur lors de la mise à jour du profil"
	if err := s.api.Put(ctx, path, nil, payload, fallback, &updated); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.establish(&updated)
	return &updated, nil
}

// establish fija el usuario, pasa a authenticated y persiste.
func (s *Store) establish(user *entity.User) {
	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	if err := s.storage.Save(user); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("session: persistance")
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *Store) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
