package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
	"github.com/toslinrazafy/cosmetique-client/pkg/logger"
)

func newClient(t *testing.T, handler http.Handler) (*rest.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := rest.NewClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c, srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de error: payload verbatim si hay cuerpo, fallback localizado si no.
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErrorConCuerpo(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"error":"Stock insuffisant"}`)
	}))

	err := c.Get(context.Background(), "/client/products", nil, "Erreur générique", nil)
	require.Error(t, err)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr, "toda respuesta no-2xx debe salir como *APIError")
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, `{"error":"Stock insuffisant"}`, apiErr.Payload,
		"el cuerpo del servidor debe conservarse verbatim")
	assert.Equal(t, "Stock insuffisant", apiErr.Error(),
		"el campo error del objeto JSON es el mensaje visible para el usuario")
}

func TestClient_ErrorConCuerpoTextoPlano(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "Code OTP invalide ou expiré")
	}))

	err := c.Get(context.Background(), "/auth/verify-otp", nil, "Erreur générique", nil)
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Code OTP invalide ou expiré", apiErr.Error(),
		"un cuerpo de texto plano viaja tal cual")
}

func TestClient_ErrorJSONSinCampoError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"autre forme"}`)
	}))

	err := c.Get(context.Background(), "/client/products", nil, "Erreur générique", nil)
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, `{"message":"autre forme"}`, apiErr.Error(),
		"sin campo error el cuerpo se devuelve entero, nunca se pierde")
}

func TestClient_ErrorSinCuerpoUsaFallback(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.Get(context.Background(), "/client/products", nil, "Erreur lors de la récupération des produits", nil)
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Erreur lors de la récupération des produits", apiErr.Error(),
		"sin cuerpo de error debe usarse el mensaje fallback de la operación")
}

func TestClient_AdjuntaRequestID(t *testing.T) {
	var got string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))

	var out []any
	require.NoError(t, c.Get(context.Background(), "/client/products", nil, "fallback", &out))
	assert.NotEmpty(t, got, "cada request debe llevar un X-Request-ID")
}

// La sesión del backend es por cookie: el jar debe reenviar la cookie que el
// login dejó en las llamadas siguientes.
func TestClient_ConservaCookiesDeSesion(t *testing.T) {
	var cookieEnSegunda string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123", Path: "/"})
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("GET /client/cart", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("JSESSIONID"); err == nil {
			cookieEnSegunda = ck.Value
		}
		w.Write([]byte(`{}`))
	})
	c, _ := newClient(t, mux)

	require.NoError(t, c.Post(context.Background(), "/auth/login", nil, map[string]string{}, "f", nil))
	require.NoError(t, c.Get(context.Background(), "/client/cart", nil, "f", nil))
	assert.Equal(t, "abc123", cookieEnSegunda,
		"la cookie de sesión del login debe viajar en las requests posteriores")
}

func TestClient_ContextoCancelado(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Get(ctx, "/client/products", nil, "f", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart de producto: parte JSON "produit" + parte binaria "image".
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_SubmitFormPartes(t *testing.T) {
	type produitPart struct {
		Nom string `json:"nom"`
	}

	var gotNom, gotFile string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			raw, _ := io.ReadAll(part)
			switch part.FormName() {
			case "produit":
				assert.Equal(t, "application/json", part.Header.Get("Content-Type"),
					"la parte produit debe declararse application/json")
				var p produitPart
				require.NoError(t, json.Unmarshal(raw, &p))
				gotNom = p.Nom
			case "image":
				gotFile = string(raw)
			}
		}
		w.Write([]byte(`{"id":9,"nom":"Crème"}`))
	}))

	var out map[string]any
	err := c.SubmitForm(context.Background(), http.MethodPost, "/admin/products",
		"produit", produitPart{Nom: "Crème"},
		"image", "creme.png", strings.NewReader("PNGDATA"),
		"Erreur lors de la création du produit", &out)
	require.NoError(t, err)
	assert.Equal(t, "Crème", gotNom)
	assert.Equal(t, "PNGDATA", gotFile)
}

func TestClient_SubmitFormSinImagen(t *testing.T) {
	partes := map[string]bool{}
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			partes[part.FormName()] = true
			io.Copy(io.Discard, part)
		}
		w.Write([]byte(`{}`))
	}))

	err := c.SubmitForm(context.Background(), http.MethodPut, "/admin/products/1",
		"produit", map[string]string{"nom": "x"},
		"image", "", nil,
		"fallback", nil)
	require.NoError(t, err)
	assert.True(t, partes["produit"])
	assert.False(t, partes["image"], "sin archivo no debe emitirse la parte image")
}
