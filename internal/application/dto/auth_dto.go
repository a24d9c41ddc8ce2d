package dto

import "github.com/toslinrazafy/cosmetique-client/internal/domain/entity"

// LoginRequest credenciales de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse cuerpo de POST /auth/login (el user establece la sesión).
type LoginResponse struct {
	User entity.User `json:"user"`
}

// RegisterRequest payload de inscripción; dispara el reto OTP, sin sesión.
// Los nombres de campo son los que espera el backend.
type RegisterRequest struct {
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	Email     string `json:"email"`
	Password  string `json:"motDePasse"`
	Address   string `json:"adresse,omitempty"`
	Country   string `json:"pays,omitempty"`
}

// RegisterResponse el backend confirma el email retado.
type RegisterResponse struct {
	Email string `json:"email"`
}

// VerifyOTPRequest canjea el código de 6 dígitos por una sesión.
type VerifyOTPRequest struct {
	Email string          `json:"email"`
	Code  string          `json:"code"`
	User  RegisterRequest `json:"user"`
}

// ResetPasswordRequest pide el envío del código de reinicio.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordConfirm confirma el reinicio con el código recibido.
type ResetPasswordConfirm struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// LogoutRequest cuerpo de POST /auth/logout.
type LogoutRequest struct {
	Email string `json:"email"`
}
