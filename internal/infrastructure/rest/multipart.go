package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// SubmitForm envía un formulario multipart con una parte JSON y un archivo
// opcional. Es el formato que exige el backend para create/update de producto:
// parte "produit" con el payload JSON y parte "image" con el binario.
func (c *Client) SubmitForm(
	ctx context.Context,
	method, path string,
	jsonField string, payload any,
	fileField, fileName string, file io.Reader,
	fallback string,
	out any,
) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("rest: serializar parte %s: %w", jsonField, err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonField))
	header.Set("Content-Type", "application/json")
	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("rest: crear parte %s: %w", jsonField, err)
	}
	if _, err := part.Write(raw); err != nil {
		return fmt.Errorf("rest: escribir parte %s: %w", jsonField, err)
	}

	if file != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("rest: crear parte %s: %w", fileField, err)
		}
		if _, err := io.Copy(fw, file); err != nil {
			return fmt.Errorf("rest: copiar archivo %s: %w", fileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("rest: cerrar multipart: %w", err)
	}

	if method != http.MethodPost && method != http.MethodPut {
		return fmt.Errorf("rest: método %s no soportado para multipart", method)
	}
	return c.do(ctx, method, path, nil, w.FormDataContentType(), &buf, fallback, out)
}
