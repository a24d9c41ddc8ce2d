package domain

import "errors"

// Errores de dominio del lado cliente (sin dependencias externas).
var (
	// ErrNoSession: la operación requiere un usuario autenticado. Los stores
	// de panier/favoris NO lo devuelven (no-op suave); lo usan las operaciones
	// donde fallar en silencio sería incorrecto (p.ej. actualizar el perfil).
	ErrNoSession = errors.New("aucun utilisateur connecté")

	// Validaciones de formulario: se devuelven antes de tocar la red.
	ErrInvalidRating = errors.New("la note doit être comprise entre 1 et 5")
	ErrEmptyQuantity = errors.New("la quantité doit être au moins 1")
)
