package store

import (
	"fmt"

	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Categories store de categorías: lectura pública, CRUD de back-office.
// Usa el contrato genérico tal cual.
type Categories struct {
	*Resource[entity.Category]
}

// NewCategories construye el store de categorías.
func NewCategories(api *rest.Client) *Categories {
	ep := Endpoints{
		ClientList: "/client/categories",
		AdminList:  "/admin/categories",
		Create:     "/admin/categories",
		Update:     func(id int64) string { return fmt.Sprintf("/admin/categories/%d", id) },
		Delete:     func(id int64) string { return fmt.Sprintf("/admin/categories/%d", id) },
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des catégories",
		Create:   "Erreur lors de la création de la catégorie",
		Update:   "Erreur lors de la mise à jour de la catégorie",
		Remove:   "Erreur lors de la suppression de la catégorie",
	}
	return &Categories{NewResource[entity.Category](api, ep, msg,
		func(c entity.Category) int64 { return c.ID })}
}
