// Package shop compone sesión, panier y favoris en un único proveedor, el
// que consumen las vistas de la tienda.
//
// Invariante de consistencia: toda mutación expuesta aquí va seguida de un
// refetch incondicional de la colección completa, aunque la mutación ya
// devuelva estado actualizado. Es el único mecanismo de consistencia del
// cliente: el backend aplica efectos en cascada (stock, promociones) que la
// respuesta de la mutación no refleja, así que nunca se confía en un merge
// optimista.
package shop

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/toslinrazafy/cosmetique-client/internal/application/session"
	"github.com/toslinrazafy/cosmetique-client/internal/application/store"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
)

// Provider agrupa los stores de panier y favoris bajo la sesión actual.
type Provider struct {
	auth      *session.Store
	cart      *store.Cart
	favorites *store.Favorites

	mu         sync.Mutex
	lastUserID int64
}

// NewProvider construye el agregado.
func NewProvider(auth *session.Store, cart *store.Cart, favorites *store.Favorites) *Provider {
	return &Provider{auth: auth, cart: cart, favorites: favorites}
}

// OnUserChange dispara fetchCart+fetchFavorites exactamente una vez por
// cambio de identidad (id nuevo no nulo). Llamadas repetidas con el mismo
// usuario no relanzan nada.
func (p *Provider) OnUserChange(ctx context.Context) error {
	id := p.userID()

	p.mu.Lock()
	if id == 0 || id == p.lastUserID {
		p.mu.Unlock()
		return nil
	}
	p.lastUserID = id
	p.mu.Unlock()

	if _, err := p.cart.Fetch(ctx, id); err != nil {
		return err
	}
	_, err := p.favorites.Fetch(ctx, id)
	return err
}

// AddToCart añade y relee el panier completo (refetch-after-write).
func (p *Provider) AddToCart(ctx context.Context, productID int64, quantity int) error {
	id := p.userID()
	if _, err := p.cart.Add(ctx, id, productID, quantity); err != nil {
		return err
	}
	_, err := p.cart.Fetch(ctx, id)
	return err
}

// UpdateCartItem cambia una cantidad y relee el panier completo.
func (p *Provider) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	id := p.userID()
	if err := p.cart.UpdateItem(ctx, id, itemID, quantity); err != nil {
		return err
	}
	_, err := p.cart.Fetch(ctx, id)
	return err
}

// RemoveFromCart quita una línea y relee el panier completo.
func (p *Provider) RemoveFromCart(ctx context.Context, itemID int64) error {
	id := p.userID()
	if err := p.cart.RemoveItem(ctx, id, itemID); err != nil {
		return err
	}
	_, err := p.cart.Fetch(ctx, id)
	return err
}

// AddToFavorites marca un favori y relee la lista completa. El refetch es lo
// que garantiza que un doble add no deja duplicados locales: la lista final
// es siempre la del servidor.
func (p *Provider) AddToFavorites(ctx context.Context, productID int64) error {
	id := p.userID()
	if _, err := p.favorites.Add(ctx, id, productID); err != nil {
		return err
	}
	_, err := p.favorites.Fetch(ctx, id)
	return err
}

// RemoveFromFavorites quita un favori y relee la lista completa.
func (p *Provider) RemoveFromFavorites(ctx context.Context, productID int64) error {
	id := p.userID()
	if err := p.favorites.Remove(ctx, id, productID); err != nil {
		return err
	}
	_, err := p.favorites.Fetch(ctx, id)
	return err
}

// Logout cierra la sesión y relee panier y favoris, que sin usuario
// resuelven a estado vacío: ningún dato por-usuario sobrevive en memoria.
func (p *Provider) Logout(ctx context.Context, email string) error {
	if err := p.auth.Logout(ctx, email); err != nil {
		return err
	}
	p.mu.Lock()
	p.lastUserID = 0
	p.mu.Unlock()

	if _, err := p.cart.Fetch(ctx, p.userID()); err != nil {
		return err
	}
	_, err := p.favorites.Fetch(ctx, p.userID())
	return err
}

// IsFavorite es un derivado: escanea el snapshot actual en cada llamada,
// nunca se almacena.
func (p *Provider) IsFavorite(productID int64) bool {
	items, _, _ := p.favorites.Snapshot()
	for _, f := range items {
		if f.Product.ID == productID {
			return true
		}
	}
	return false
}

// CartTotal deriva Σ prix×quantite sobre el panier actual.
func (p *Provider) CartTotal() decimal.Decimal {
	return p.cart.Total()
}

// CartCount deriva el número de unidades en el panier.
func (p *Provider) CartCount() int {
	return p.cart.Count()
}

// Cart expone el snapshot del panier.
func (p *Provider) Cart() (*entity.Cart, bool, error) {
	return p.cart.Snapshot()
}

// Favorites expone el snapshot de los favoris.
func (p *Provider) Favorites() ([]entity.Favorite, bool, error) {
	return p.favorites.Snapshot()
}

func (p *Provider) userID() int64 {
	if user := p.auth.Current(); user != nil {
		return user.ID
	}
	return 0
}
