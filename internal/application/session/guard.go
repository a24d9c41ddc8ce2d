package session

// Zone clasifica las rutas de la aplicación para el guard.
type Zone int

const (
	// ZonePublic: landing, login, registro, reset. Accesible a cualquiera.
	ZonePublic Zone = iota
	// ZoneShop: rutas de compra ordinarias (home, shop, panier, checkout...).
	ZoneShop
	// ZoneAccount: settings, accesible incluso con la cuenta bloqueada,
	// es donde el usuario resuelve el bloqueo.
	ZoneAccount
	// ZoneAdmin: back-office, solo rol ADMIN.
	ZoneAdmin
)

// Rutas destino de las redirecciones del guard.
const (
	RouteLogin          = "/login"
	RouteHome           = "/home"
	RouteSettings       = "/settings"
	RouteAdminDashboard = "/admin/dashboard"
)

// Decision resultado del guard: o se renderiza la ruta o se redirige.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Resolve aplica las reglas de guardia sobre el usuario actual:
//   - anónimo en zona protegida → login
//   - rol equivocado → su dashboard (CLIENT→home, ADMIN→back-office)
//   - cuenta bloqueada en zona de compra → settings, hasta resolver el bloqueo
func (s *Store) Resolve(zone Zone) Decision {
	user := s.Current()

	if zone == ZonePublic {
		return Decision{Allow: true}
	}
	if user == nil {
		return Decision{RedirectTo: RouteLogin}
	}

	switch zone {
	case ZoneAdmin:
		if !user.IsAdmin() {
			return Decision{RedirectTo: RouteHome}
		}
	case ZoneShop:
		if user.IsAdmin() {
			return Decision{RedirectTo: RouteAdminDashboard}
		}
		if user.Blocked {
			return Decision{RedirectTo: RouteSettings}
		}
	case ZoneAccount:
		// settings queda accesible aun bloqueado
	}
	return Decision{Allow: true}
}
