package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Cart store del panier. El panier se reemplaza entero en cada lectura; el
// cliente nunca fusiona items. Toda operación sin usuario es un no-op suave:
// antes del login no hay panier y fallar sería ruido.
type Cart struct {
	mu      sync.Mutex
	cart    *entity.Cart
	loading bool
	err     error

	api *rest.Client
}

// NewCart construye el store del panier.
func NewCart(api *rest.Client) *Cart {
	return &Cart{api: api}
}

// Snapshot devuelve el panier actual (nil si no hay), loading y error.
func (s *Cart) Snapshot() (*entity.Cart, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart, s.loading, s.err
}

// Fetch recarga el panier del usuario. Sin usuario limpia el panier local y
// devuelve nil: tras un logout la recarga debe resolver a estado vacío.
func (s *Cart) Fetch(ctx context.Context, userID int64) (*entity.Cart, error) {
	if userID == 0 {
		s.mu.Lock()
		s.cart = nil
		s.mu.Unlock()
		return nil, nil
	}
	s.begin()
	defer s.finish()

	var cart entity.Cart
	fallback := "Erreur lors de la récupération du panier"
	if err := s.api.Get(ctx, "/client/cart", userQuery(userID), fallback, &cart); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.cart = &cart
	s.mu.Unlock()
	return &cart, nil
}

// Add añade un producto; el backend devuelve el panier actualizado entero.
// La quantité se valida antes de tocar la red, como toda validación de
// formulario.
func (s *Cart) Add(ctx context.Context, userID, productID int64, quantity int) (*entity.Cart, error) {
	if userID == 0 {
		return nil, nil
	}
	if quantity < 1 {
		return nil, domain.ErrEmptyQuantity
	}
	s.begin()
	defer s.finish()

	body := dto.AddToCartRequest{UserID: userID, ProductID: productID, Quantity: quantity}
	var cart entity.Cart
	fallback := "Erreur lors de l'ajout au panier"
	if err := s.api.Post(ctx, "/client/cart/add", nil, body, fallback, &cart); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.cart = &cart
	s.mu.Unlock()
	return &cart, nil
}

// UpdateItem cambia la cantidad de una línea. El endpoint devuelve vacío, así
// que la operación relee el panier completo a continuación.
func (s *Cart) UpdateItem(ctx context.Context, userID, itemID int64, quantity int) error {
	if quantity < 1 {
		return domain.ErrEmptyQuantity
	}
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/client/cart/update/%d", itemID)
	body := dto.UpdateCartItemRequest{Quantity: quantity}
	fallback := "Erreur lors de la mise à jour du panier"
	if err := s.api.Put(ctx, path, nil, body, fallback, nil); err != nil {
		s.setErr(err)
		return err
	}
	return s.reload(ctx, userID, fallback)
}

// RemoveItem quita una línea del panier y lo relee.
func (s *Cart) RemoveItem(ctx context.Context, userID, itemID int64) error {
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/client/cart/remove/%d", itemID)
	fallback := "Erreur lors de la suppression du panier"
	if err := s.api.Delete(ctx, path, nil, fallback); err != nil {
		s.setErr(err)
		return err
	}
	return s.reload(ctx, userID, fallback)
}

// Clear vacía el panier del usuario. Sin usuario: no-op suave.
func (s *Cart) Clear(ctx context.Context, userID int64) error {
	if userID == 0 {
		return nil
	}
	s.begin()
	defer s.finish()

	fallback := "Erreur lors du vidage du panier"
	if err := s.api.Delete(ctx, "/client/cart/clear", userQuery(userID), fallback); err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	return nil
}

// Total deriva Σ prix×quantite sobre el snapshot actual, con los precios ya
// normalizados por Amount. Se recalcula en cada llamada, nunca se almacena.
func (s *Cart) Total() decimal.Decimal {
	cart, _, _ := s.Snapshot()
	total := decimal.Zero
	if cart == nil {
		return total
	}
	for _, item := range cart.Items {
		line := item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Count deriva el número total de unidades en el panier.
func (s *Cart) Count() int {
	cart, _, _ := s.Snapshot()
	if cart == nil {
		return 0
	}
	n := 0
	for _, item := range cart.Items {
		n += item.Quantity
	}
	return n
}

func (s *Cart) reload(ctx context.Context, userID int64, fallback string) error {
	var cart entity.Cart
	if err := s.api.Get(ctx, "/client/cart", userQuery(userID), fallback, &cart); err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	s.cart = &cart
	s.mu.Unlock()
	return nil
}

func userQuery(userID int64) url.Values {
	return url.Values{"userId": {strconv.FormatInt(userID, 10)}}
}

func (s *Cart) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *Cart) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Cart) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
