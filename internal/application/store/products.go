package store

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Products store del catálogo. Create/Update usan multipart (parte JSON
// "produit" + imagen opcional), el resto sigue el contrato genérico.
type Products struct {
	*Resource[entity.Product]
}

// NewProducts construye el store de productos.
func NewProducts(api *rest.Client) *Products {
	ep := Endpoints{
		ClientList: "/client/products",
		AdminList:  "/admin/products",
		Get:        func(id int64) string { return fmt.Sprintf("/client/products/%d", id) },
		Create:     "/admin/products",
		Update:     func(id int64) string { return fmt.Sprintf("/admin/products/%d", id) },
		Delete:     func(id int64) string { return fmt.Sprintf("/admin/products/%d", id) },
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des produits",
		FetchOne: "Erreur lors de la récupération du produit",
		Create:   "Erreur lors de la création du produit",
		Update:   "Erreur lors de la mise à jour du produit",
		Remove:   "Erreur lors de la suppression du produit",
	}
	return &Products{NewResource[entity.Product](api, ep, msg,
		func(p entity.Product) int64 { return p.ID })}
}

// Create sombra del Create genérico: el backend exige multipart.
// image nil omite la parte binaria.
func (s *Products) Create(ctx context.Context, form dto.ProductForm, image io.Reader, imageName string) (entity.Product, error) {
	s.begin()
	defer s.finish()

	var created entity.Product
	err := s.api.SubmitForm(ctx, http.MethodPost, s.ep.Create,
		"produit", form, "image", imageName, image, s.msg.Create, &created)
	if err != nil {
		s.setErr(err)
		return created, err
	}
	s.appendItem(created)
	return created, nil
}

// Update sombra del Update genérico, mismo formato multipart.
func (s *Products) Update(ctx context.Context, id int64, form dto.ProductForm, image io.Reader, imageName string) (entity.Product, error) {
	s.begin()
	defer s.finish()

	var updated entity.Product
	err := s.api.SubmitForm(ctx, http.MethodPut, s.ep.Update(id),
		"produit", form, "image", imageName, image, s.msg.Update, &updated)
	if err != nil {
		s.setErr(err)
		return updated, err
	}
	s.replaceByID(id, updated)
	return updated, nil
}

// Search filtra el snapshot actual por nom, marque o description, sin
// distinguir acentos ni mayúsculas. Es un derivado puro: no toca el estado.
func (s *Products) Search(term string) []entity.Product {
	data, _, _ := s.Snapshot()
	folded := foldAccents(term)
	if folded == "" {
		return data
	}
	var out []entity.Product
	for _, p := range data {
		if containsFolded(p.Name, folded) ||
			containsFolded(p.Brand, folded) ||
			containsFolded(p.Description, folded) {
			out = append(out, p)
		}
	}
	return out
}
