// Package store implementa los stores de recursos del cliente: cada store
// envuelve las llamadas CRUD de una entidad del backend y expone el triple
// {data, loading, error} que las capas superiores consultan vía Snapshot.
//
// Contrato compartido por todas las operaciones:
//   - al entrar: loading=true, error=nil
//   - éxito de FetchAll: data se reemplaza entero (sin merge incremental)
//   - éxito de Create/Update/Remove: append/reemplazo/filtro local por id
//   - fallo: error guarda el payload del servidor (o el fallback localizado)
//     y el error se devuelve igualmente al llamador
//   - loading se limpia en ambos desenlaces (defer)
//
// Una instancia tiene UN solo slot loading/error: dos operaciones concurrentes
// corren last-write-wins sobre él. Es una limitación aceptada, no una
// garantía; no hay cola, ni caché, ni retry, ni dedupe de requests en vuelo.
package store

import (
	"context"
	"sync"

	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
)

// Scope selecciona el endpoint de back-office o el de tienda para los
// recursos que exponen ambos.
type Scope int

const (
	ScopeClient Scope = iota
	ScopeAdmin
)

// Endpoints rutas de un recurso. Las variantes ausentes quedan vacías/nil.
type Endpoints struct {
	ClientList string
	AdminList  string
	Get        func(id int64) string
	Create     string
	Update     func(id int64) string
	Delete     func(id int64) string
}

// Messages mensajes fallback localizados por operación (se usan cuando la
// respuesta de error llega sin cuerpo).
type Messages struct {
	FetchAll string
	FetchOne string
	Create   string
	Update   string
	Remove   string
}

// Resource es el contrato genérico de store para colecciones: cinco
// operaciones CRUD sobre el mismo slot de estado.
type Resource[T any] struct {
	mu      sync.Mutex
	data    []T
	loading bool
	err     error

	api *rest.Client
	ep  Endpoints
	msg Messages
	id  func(T) int64
}

// NewResource construye el store; id extrae el identificador de una entidad
// (para reemplazos y filtros locales).
func NewResource[T any](api *rest.Client, ep Endpoints, msg Messages, id func(T) int64) *Resource[T] {
	return &Resource[T]{api: api, ep: ep, msg: msg, id: id}
}

// Snapshot devuelve el estado actual (copia del slice, loading, error).
func (r *Resource[T]) Snapshot() ([]T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.data))
	copy(out, r.data)
	return out, r.loading, r.err
}

// FetchAll recarga la colección completa desde el endpoint del scope.
func (r *Resource[T]) FetchAll(ctx context.Context, scope Scope) ([]T, error) {
	r.begin()
	defer r.finish()

	path := r.ep.ClientList
	if scope == ScopeAdmin || path == "" {
		path = r.ep.AdminList
	}

	var items []T
	if err := r.api.Get(ctx, path, nil, r.msg.FetchAll, &items); err != nil {
		r.setErr(err)
		return nil, err
	}
	if items == nil {
		// el backend puede devolver null en colecciones vacías
		items = []T{}
	}
	r.replaceAll(items)
	return items, nil
}

// FetchOne lee una entidad; no toca la colección data.
func (r *Resource[T]) FetchOne(ctx context.Context, id int64) (T, error) {
	r.begin()
	defer r.finish()

	var item T
	if err := r.api.Get(ctx, r.ep.Get(id), nil, r.msg.FetchOne, &item); err != nil {
		r.setErr(err)
		return item, err
	}
	return item, nil
}

// Create envía el payload y, en éxito, hace append local de la entidad creada
// (optimista: sin refetch).
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	r.begin()
	defer r.finish()

	var created T
	if err := r.api.Post(ctx, r.ep.Create, nil, payload, r.msg.Create, &created); err != nil {
		r.setErr(err)
		return created, err
	}
	r.appendItem(created)
	return created, nil
}

// Update envía el payload y, en éxito, reemplaza en data la entidad con ese id
// por el objeto devuelto por el servidor (no un merge local).
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	r.begin()
	defer r.finish()

	var updated T
	if err := r.api.Put(ctx, r.ep.Update(id), nil, payload, r.msg.Update, &updated); err != nil {
		r.setErr(err)
		return updated, err
	}
	r.replaceByID(id, updated)
	return updated, nil
}

// Remove borra la entidad y, en éxito, la filtra de data.
func (r *Resource[T]) Remove(ctx context.Context, id int64) error {
	r.begin()
	defer r.finish()

	if err := r.api.Delete(ctx, r.ep.Delete(id), nil, r.msg.Remove); err != nil {
		r.setErr(err)
		return err
	}
	r.removeByID(id)
	return nil
}

// ── Mutadores internos del slot de estado ─────────────────────────────────────

func (r *Resource[T]) begin() {
	r.mu.Lock()
	r.loading = true
	r.err = nil
	r.mu.Unlock()
}

func (r *Resource[T]) finish() {
	r.mu.Lock()
	r.loading = false
	r.mu.Unlock()
}

func (r *Resource[T]) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *Resource[T]) replaceAll(items []T) {
	r.mu.Lock()
	r.data = items
	r.mu.Unlock()
}

func (r *Resource[T]) appendItem(item T) {
	r.mu.Lock()
	r.data = append(r.data, item)
	r.mu.Unlock()
}

func (r *Resource[T]) replaceByID(id int64, item T) {
	r.mu.Lock()
	for i := range r.data {
		if r.id(r.data[i]) == id {
			r.data[i] = item
		}
	}
	r.mu.Unlock()
}

func (r *Resource[T]) removeByID(id int64) {
	r.mu.Lock()
	kept := r.data[:0]
	for _, it := range r.data {
		if r.id(it) != id {
			kept = append(kept, it)
		}
	}
	r.data = kept
	r.mu.Unlock()
}

// patchByID aplica una mutación local a la entidad con ese id (para los
// endpoints que devuelven cuerpo vacío: block/unblock, cancel, status).
func (r *Resource[T]) patchByID(id int64, fn func(*T)) {
	r.mu.Lock()
	for i := range r.data {
		if r.id(r.data[i]) == id {
			fn(&r.data[i])
		}
	}
	r.mu.Unlock()
}
