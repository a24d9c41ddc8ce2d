package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Favorites store de favoris. La unicidad por producto la garantiza el
// servidor; el cliente tampoco duplica localmente porque cada mutación va
// seguida de un refetch completo (ver el agregado shop).
type Favorites struct {
	mu      sync.Mutex
	items   []entity.Favorite
	loading bool
	err     error

	api *rest.Client
}

// NewFavorites construye el store de favoris.
func NewFavorites(api *rest.Client) *Favorites {
	return &Favorites{api: api}
}

// Snapshot devuelve la lista actual (copia), loading y error.
func (s *Favorites) Snapshot() ([]entity.Favorite, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Favorite, len(s.items))
	copy(out, s.items)
	return out, s.loading, s.err
}

// Fetch recarga los favoris del usuario. Sin usuario limpia la lista local.
func (s *Favorites) Fetch(ctx context.Context, userID int64) ([]entity.Favorite, error) {
	if userID == 0 {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return nil, nil
	}
	s.begin()
	defer s.finish()

	var items []entity.Favorite
	fallback := "Erreur lors de la récupération des favoris"
	if err := s.api.Get(ctx, "/client/favorites", userQuery(userID), fallback, &items); err != nil {
		s.setErr(err)
		return nil, err
	}
	if items == nil {
		items = []entity.Favorite{}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// Add marca un producto como favori; append local de la entrada devuelta.
func (s *Favorites) Add(ctx context.Context, userID, productID int64) (*entity.Favorite, error) {
	if userID == 0 {
		return nil, nil
	}
	s.begin()
	defer s.finish()

	body := dto.AddFavoriteRequest{UserID: userID, ProductID: productID}
	var fav entity.Favorite
	fallback := "Erreur lors de l'ajout aux favoris"
	if err := s.api.Post(ctx, "/client/favorites/add", nil, body, fallback, &fav); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, fav)
	s.mu.Unlock()
	return &fav, nil
}

// Remove quita un producto de los favoris; filtro local por produit.id.
func (s *Favorites) Remove(ctx context.Context, userID, productID int64) error {
	if userID == 0 {
		return nil
	}
	s.begin()
	defer s.finish()

	path := fmt.Sprintf("/client/favorites/remove/%d", productID)
	fallback := "Erreur lors de la suppression des favoris"
	if err := s.api.Delete(ctx, path, userQuery(userID), fallback); err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, f := range s.items {
		if f.Product.ID != productID {
			kept = append(kept, f)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *Favorites) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *Favorites) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Favorites) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
