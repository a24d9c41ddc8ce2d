package store

import (
	"context"
	"fmt"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Stocks store de existencias del back-office. Mantiene además el historique
// de movimientos; ambas colecciones comparten el mismo slot loading/error,
// como el hook del que proviene.
type Stocks struct {
	*Resource[entity.Stock]
	history []entity.StockHistory
}

// NewStocks construye el store de stocks.
func NewStocks(api *rest.Client) *Stocks {
	ep := Endpoints{
		AdminList: "/admin/stocks",
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des stocks",
		Update:   "Erreur lors de la mise à jour du stock",
	}
	return &Stocks{Resource: NewResource[entity.Stock](api, ep, msg,
		func(s entity.Stock) int64 { return s.ID })}
}

// FetchLowAlerts carga solo los stocks bajo el umbral y reemplaza data.
func (s *Stocks) FetchLowAlerts(ctx context.Context) ([]entity.Stock, error) {
	s.begin()
	defer s.finish()

	var items []entity.Stock
	fallback := "Erreur lors de la récupération des alertes de stock"
	if err := s.api.Get(ctx, "/admin/stocks/low", nil, fallback, &items); err != nil {
		s.setErr(err)
		return nil, err
	}
	if items == nil {
		items = []entity.Stock{}
	}
	s.replaceAll(items)
	return items, nil
}

// Update ajusta la existencia de un producto (isAddition suma, si no resta).
// La respuesta reemplaza la entrada cuyo produit.id coincide.
func (s *Stocks) Update(ctx context.Context, productID int64, quantity int, isAddition bool) (entity.Stock, error) {
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/admin/stocks/%d", productID)
	body := dto.StockUpdateRequest{Quantity: quantity, IsAddition: isAddition}
	var updated entity.Stock
	if err := s.api.Put(ctx, path, nil, body, s.msg.Update, &updated); err != nil {
		s.setErr(err)
		return updated, err
	}

	s.mu.Lock()
	for i := range s.data {
		if s.data[i].Product.ID == productID {
			s.data[i] = updated
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// FetchHistory carga el historique de movimientos de stock.
func (s *Stocks) FetchHistory(ctx context.Context) ([]entity.StockHistory, error) {
	s.begin()
	defer s.finish()

	var items []entity.StockHistory
	fallback := "Erreur lors de la récupération de l'historique des stocks"
	if err := s.api.Get(ctx, "/admin/historique-stock", nil, fallback, &items); err != nil {
		s.setErr(err)
		return nil, err
	}
	if items == nil {
		items = []entity.StockHistory{}
	}
	s.mu.Lock()
	s.history = items
	s.mu.Unlock()
	return items, nil
}

// History devuelve una copia del historique cargado.
func (s *Stocks) History() []entity.StockHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockHistory, len(s.history))
	copy(out, s.history)
	return out
}
