package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toslinrazafy/cosmetique-client/pkg/logger"
)

// Límite de lectura del cuerpo de respuesta.
const maxBodyBytes = 1 << 20

// Client es el único punto de salida HTTP hacia el backend de la tienda.
// Lleva la base URL, un cookie jar (la sesión del backend es por cookie) y
// el interceptor de errores: toda respuesta no-2xx se loguea y se propaga
// como *APIError, nunca se traga.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout cero usa el default del transporte.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("rest: crear cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// Get emite un GET y deserializa la respuesta en out (out puede ser nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, fallback string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, fallback, out)
}

// Post emite un POST con cuerpo JSON (body nil envía cuerpo vacío).
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any, fallback string, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, query, "application/json", reader, fallback, out)
}

// Put emite un PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any, fallback string, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, query, "application/json", reader, fallback, out)
}

// Delete emite un DELETE (respuesta ignorada salvo el status).
func (c *Client) Delete(ctx context.Context, path string, query url.Values, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, query, "", nil, fallback, nil)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("rest: serializar cuerpo: %w", err)
	}
	return bytes.NewReader(raw), nil
}

// do es el helper único de requests: arma la URL, adjunta X-Request-ID,
// ejecuta, y aplica el contrato de error (payload verbatim o fallback).
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	contentType string,
	body io.Reader,
	fallback string,
	out any,
) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("rest: crear request %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("rest: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("rest: leer respuesta de %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Payload:    string(raw),
			Fallback:   fallback,
		}
		// Interceptor: log y propagación, sin retry ni transformación.
		c.log.Error().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", apiErr.Payload).
			Msg("erreur API")
		return apiErr
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("rest: deserializar respuesta de %s %s: %w", method, path, err)
		}
	}
	return nil
}
