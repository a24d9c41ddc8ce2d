package store

import (
	"context"
	"fmt"

	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Users store de usuarios del back-office.
type Users struct {
	*Resource[entity.User]
}

// NewUsers construye el store de usuarios.
func NewUsers(api *rest.Client) *Users {
	ep := Endpoints{
		AdminList: "/admin/users",
		Create:    "/admin/users",
		Update:    func(id int64) string { return fmt.Sprintf("/admin/users/%d", id) },
		Delete:    func(id int64) string { return fmt.Sprintf("/admin/users/%d", id) },
	}
	msg := Messages{
		FetchAll: "Erreur lors de la récupération des utilisateurs",
		Create:   "Erreur lors de la création de l'utilisateur",
		Update:   "Erreur lors de la mise à jour de l'utilisateur",
		Remove:   "Erreur lors de la suppression de l'utilisateur",
	}
	return &Users{NewResource[entity.User](api, ep, msg,
		func(u entity.User) int64 { return u.ID })}
}

// Block bloquea la cuenta; el endpoint devuelve vacío, se parchea el flag.
func (s *Users) Block(ctx context.Context, id int64) error {
	return s.setBlocked(ctx, id, true)
}

// Unblock desbloquea la cuenta.
func (s *Users) Unblock(ctx context.Context, id int64) error {
	return s.setBlocked(ctx, id, false)
}

func (s *Users) setBlocked(ctx context.Context, id int64, blocked bool) error {
	s.begin()
	defer s.finish()

	action, fallback := "unblock", "Erreur lors du déblocage de l'utilisateur"
	if blocked {
		action, fallback = "block", "Erreur lors du blocage de l'utilisateur"
	}
	path := fmt.Sprintf("/admin/users/%d/%s", id, action)
	if err := s.api.Put(ctx, path, nil, nil, fallback, nil); err != nil {
		s.setErr(err)
		return err
	}
	s.patchByID(id, func(u *entity.User) { u.Blocked = blocked })
	return nil
}
