package rest

import (
	"encoding/json"
	"strings"
)

// APIError representa una respuesta no-2xx del backend. El cuerpo de la
// respuesta se conserva verbatim como payload; Error() devuelve el mensaje
// visible para el usuario: el campo "error" si el cuerpo es un objeto JSON
// que lo trae, el cuerpo tal cual si no, y el fallback localizado de la
// operación si llegó vacío.
type APIError struct {
	StatusCode int
	Payload    string
	Fallback   string
}

func (e *APIError) Error() string {
	if msg := e.message(); msg != "" {
		return msg
	}
	return e.Fallback
}

func (e *APIError) message() string {
	trimmed := strings.TrimSpace(e.Payload)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "{") {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal([]byte(trimmed), &body); err == nil && body.Error != "" {
			return body.Error
		}
	}
	return trimmed
}
