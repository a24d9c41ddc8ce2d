package entity

// Roles válidos para User.
const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

// User representa al usuario autenticado tal como lo devuelve el backend.
// Es el objeto que se persiste localmente para restaurar la sesión.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
	Country   string `json:"country,omitempty"`
	Role      string `json:"role"` // CLIENT o ADMIN
	Blocked   bool   `json:"blocked"`
}

// IsAdmin indica si el usuario tiene rol de administración.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
