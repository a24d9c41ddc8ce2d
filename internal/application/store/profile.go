package store

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Profile store del perfil propio y del formulario de contacto. Es un store
// de valor único, no de colección.
type Profile struct {
	mu      sync.Mutex
	user    *entity.User
	loading bool
	err     error

	api *rest.Client
}

// NewProfile construye el store de perfil.
func NewProfile(api *rest.Client) *Profile {
	return &Profile{api: api}
}

// Snapshot devuelve el perfil cargado (nil si no se ha cargado), loading y error.
func (s *Profile) Snapshot() (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.loading, s.err
}

// Fetch carga el perfil del usuario. Sin usuario: no-op suave.
func (s *Profile) Fetch(ctx context.Context, userID int64) (*entity.User, error) {
	if userID == 0 {
		return nil, nil
	}
	s.begin()
	defer s.finish()

	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var user entity.User
	fallback := "Erreur lors de la récupération du profil"
	if err := s.api.Get(ctx, "/client/profile", query, fallback, &user); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// Contact envía el formulario de contacto de la landing.
func (s *Profile) Contact(ctx context.Context, req dto.ContactRequest) error {
	s.begin()
	defer s.finish()

	fallback := "Erreur lors de l'envoi du message"
	if err := s.api.Post(ctx, "/client/contact", nil, req, fallback, nil); err != nil {
		s.setErr(err)
		return err
	}
	return nil
}

func (s *Profile) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *Profile) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Profile) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
