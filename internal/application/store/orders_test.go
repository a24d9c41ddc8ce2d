package store_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toslinrazafy/cosmetique-client/internal/application/store"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
)

func TestOrders_FetchClientExigeUsuario(t *testing.T) {
	llamadas := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { llamadas++ })
	s := store.NewOrders(newAPI(t, mux))

	items, err := s.Fetch(context.Background(), store.ScopeClient, 0)
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Zero(t, llamadas, "sin usuario en scope tienda: no-op suave")
}

func TestOrders_FetchAdminNoLlevaUserID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("userId"))
		io.WriteString(w, "[]")
	})
	s := store.NewOrders(newAPI(t, mux))

	_, err := s.Fetch(context.Background(), store.ScopeAdmin, 0)
	require.NoError(t, err)
}

func TestOrders_CreateCheckout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /client/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12", r.URL.Query().Get("userId"))
		json.NewEncoder(w).Encode(entity.Order{ID: 100, Status: entity.OrderPending,
			Total: entity.AmountFromFloat(25.5)})
	})
	s := store.NewOrders(newAPI(t, mux))

	order, err := s.Create(context.Background(), 12)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, "25.5", order.Total.String(),
		"el total viene del servidor, el cliente no lo calcula")

	data, _, _ := s.Snapshot()
	require.Len(t, data, 1)
}

func TestOrders_CancelParcheaStatut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /client/orders", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.Order{{ID: 100, Status: entity.OrderPending}})
	})
	mux.HandleFunc("POST /client/orders/100/cancel", func(w http.ResponseWriter, r *http.Request) {})
	s := store.NewOrders(newAPI(t, mux))
	_, err := s.Fetch(context.Background(), store.ScopeClient, 12)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(context.Background(), 100))
	data, _, _ := s.Snapshot()
	assert.Equal(t, entity.OrderCancelled, data[0].Status,
		"cancel devuelve vacío: el statut se parchea localmente")
}

func TestOrders_UpdateStatusAdmin(t *testing.T) {
	var cuerpo map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/orders", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.Order{{ID: 100, Status: entity.OrderPending}})
	})
	mux.HandleFunc("PUT /admin/orders/100/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&cuerpo)
	})
	s := store.NewOrders(newAPI(t, mux))
	_, err := s.Fetch(context.Background(), store.ScopeAdmin, 0)
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(context.Background(), 100, entity.OrderShipped))
	assert.Equal(t, entity.OrderShipped, cuerpo["status"])

	data, _, _ := s.Snapshot()
	assert.Equal(t, entity.OrderShipped, data[0].Status)
}
