package store

import (
	"fmt"

	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Promotions store de promociones: la tienda solo ve las activas
// (/client/promotions), el back-office las gestiona todas.
type Promotions struct {
	*Resource[entity.Promotion]
}

// NewPromotions construye el store de promociones.
func NewPromotions(api *rest.Client) *Promotions {
	ep := Endpoints{
		ClientList: "/client/promotions",
		AdminList:  "/admin/promotions",
		Create:     "/admin/promotions",
		Delete:     func(id int64) string { return fmt.Sprintf("/admin/promotions/%d", id) },
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des promotions",
		Create:   "Erreur lors de la création de la promotion",
		Remove:   "Erreur lors de la suppression de la promotion",
	}
	return &Promotions{NewResource[entity.Promotion](api, ep, msg,
		func(p entity.Promotion) int64 { return p.ID })}
}
