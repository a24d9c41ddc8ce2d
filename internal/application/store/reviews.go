package store

import (
	"context"
	"fmt"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Reviews store de avis: la tienda los lista por producto, el back-office
// los lista todos y modera (borra).
type Reviews struct {
	*Resource[entity.Review]
}

// NewReviews construye el store de avis.
func NewReviews(api *rest.Client) *Reviews {
	ep := Endpoints{
		AdminList: "/admin/reviews",
		Create:    "/client/reviews",
		Delete:    func(id int64) string { return fmt.Sprintf("/admin/reviews/%d", id) },
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des avis",
		Create:   "Erreur lors de l'ajout de l'avis",
		Remove:   "Erreur lors de la suppression de l'avis",
	}
	return &Reviews{NewResource[entity.Review](api, ep, msg,
		func(r entity.Review) int64 { return r.ID })}
}

// FetchForProduct carga los avis de un producto (endpoint de tienda) y
// reemplaza la colección con ellos.
func (s *Reviews) FetchForProduct(ctx context.Context, productID int64) ([]entity.Review, error) {
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/client/reviews/%d", productID)
	var items []entity.Review
	if err := s.api.Get(ctx, path, nil, s.msg.FetchAll, &items); err != nil {
		s.setErr(err)
		return nil, err
	}
	if items == nil {
		items = []entity.Review{}
	}
	s.replaceAll(items)
	return items, nil
}

// Add publica un avis. La note se valida antes de tocar la red: los errores
// de formulario se devuelven de inmediato sin pasar por el slot de error.
func (s *Reviews) Add(ctx context.Context, req dto.ReviewRequest) (entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return entity.Review{}, domain.ErrInvalidRating
	}
	return s.Resource.Create(ctx, req)
}
