package store_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
	"github.com/toslinrazafy/cosmetique-client/pkg/logger"
)

// newAPI levanta un backend falso y devuelve el cliente REST apuntándole.
func newAPI(t *testing.T, handler http.Handler) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := rest.NewClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}
