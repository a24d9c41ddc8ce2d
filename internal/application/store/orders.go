package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Orders store de commandes. El checkout (Create) lo hace el servidor a
// partir del panier actual: vacía el carrito, decrementa stock y calcula el
// total; el cliente solo refleja la commande devuelta.
type Orders struct {
	*Resource[entity.Order]
}

// NewOrders construye el store de commandes.
func NewOrders(api *rest.Client) *Orders {
	ep := Endpoints{
		ClientList: "/client/orders",
		AdminList:  "/admin/orders",
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des commandes",
		FetchOne: "Erreur lors de la récupération de la commande",
		Create:   "Erreur lors de la création de la commande",
		Update:   "Erreur lors de la mise à jour du statut",
	}
	return &Orders{NewResource[entity.Order](api, ep, msg,
		func(o entity.Order) int64 { return o.ID })}
}

// Fetch recarga las commandes. En scope tienda exige un userId; sin usuario
// es un no-op suave (nil, nil), nunca un error ruidoso antes del login.
func (s *Orders) Fetch(ctx context.Context, scope Scope, userID int64) ([]entity.Order, error) {
	if scope == ScopeClient && userID == 0 {
		return nil, nil
	}
	s.begin()
	defer s.finish()

	path := s.ep.ClientList
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	if scope == ScopeAdmin {
		path = s.ep.AdminList
		query = nil
	}

	var items []entity.Order
	if err := s.api.Get(ctx, path, query, s.msg.FetchAll, &items); err != nil {
		s.setErr(err)
		return nil, err
	}
	if items == nil {
		items = []entity.Order{}
	}
	s.replaceAll(items)
	return items, nil
}

// FetchOne lee una commande por id en el scope indicado; no toca data.
func (s *Orders) FetchOne(ctx context.Context, scope Scope, id int64) (entity.Order, error) {
	s.begin()
	defer s.finish()

	base := "/client/orders"
	if scope == ScopeAdmin {
		base = "/admin/orders"
	}
	var order entity.Order
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d", base, id), nil, s.msg.FetchOne, &order); err != nil {
		s.setErr(err)
		return order, err
	}
	return order, nil
}

// Create lanza el checkout del panier del usuario. Sin usuario: no-op suave.
func (s *Orders) Create(ctx context.Context, userID int64) (*entity.Order, error) {
	if userID == 0 {
		return nil, nil
	}
	s.begin()
	defer s.finish()

	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var order entity.Order
	if err := s.api.Post(ctx, "/client/orders", query, nil, s.msg.Create, &order); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.appendItem(order)
	return &order, nil
}

// Cancel anula una commande EN_ATTENTE. El endpoint no devuelve cuerpo, así
// que el statut se parchea localmente.
func (s *Orders) Cancel(ctx context.Context, id int64) error {
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/client/orders/%d/cancel", id)
	if err := s.api.Post(ctx, path, nil, nil, "Erreur lors de l'annulation de la commande", nil); err != nil {
		s.setErr(err)
		return err
	}
	s.patchByID(id, func(o *entity.Order) { o.Status = entity.OrderCancelled })
	return nil
}

// UpdateStatus cambia el statut de una commande (back-office); patch local.
func (s *Orders) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/admin/orders/%d/status", id)
	body := dto.OrderStatusRequest{Status: status}
	if err := s.api.Put(ctx, path, nil, body, s.msg.Update, nil); err != nil {
		s.setErr(err)
		return err
	}
	s.patchByID(id, func(o *entity.Order) { o.Status = status })
	return nil
}
