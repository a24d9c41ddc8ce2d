package store_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toslinrazafy/cosmetique-client/internal/application/dto"
	"github.com/toslinrazafy/cosmetique-client/internal/application/store"
	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
)

func TestProfile_SinUsuarioEsNoOpSuave(t *testing.T) {
	llamadas := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { llamadas++ })
	s := store.NewProfile(newAPI(t, mux))

	user, err := s.Fetch(context.Background(), 0)
	require.NoError(t, err, "sin usuario la operación no es un error ruidoso")
	assert.Nil(t, user)
	assert.Zero(t, llamadas, "sin usuario no debe tocarse la red")
}

func TestProfile_FetchConUserID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /client/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12", r.URL.Query().Get("userId"))
		json.NewEncoder(w).Encode(entity.User{ID: 12, FirstName: "Aina", Email: "a@b.com"})
	})
	s := store.NewProfile(newAPI(t, mux))

	user, err := s.Fetch(context.Background(), 12)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Aina", user.FirstName)

	snap, loading, errSlot := s.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, int64(12), snap.ID)
	assert.False(t, loading)
	assert.NoError(t, errSlot)
}

func TestProfile_ContactEnvia(t *testing.T) {
	var recibido dto.ContactRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /client/contact", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&recibido)
	})
	s := store.NewProfile(newAPI(t, mux))

	req := dto.ContactRequest{Email: "a@b.com", Subject: "Livraison", Message: "Où est ma commande ?"}
	require.NoError(t, s.Contact(context.Background(), req))
	assert.Equal(t, req, recibido)
}

func TestProfile_ContactErrorPropagaYGuarda(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /client/contact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "Service de messagerie indisponible")
	})
	s := store.NewProfile(newAPI(t, mux))

	err := s.Contact(context.Background(), dto.ContactRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indisponible")

	_, loading, errSlot := s.Snapshot()
	assert.False(t, loading)
	assert.Error(t, errSlot, "el slot de error debe reflejar el fallo para la vista")
}
