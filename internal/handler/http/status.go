package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fayrashop/api/internal/apperrors"
)

// statusPageHTML is the plain status page served at the root. It is the
// one surface that bypasses the response envelope.
const statusPageHTML = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h1>%s</h1>
<p>Status: running</p>
<p>Version: %s</p>
<p>Environment: %s</p>
<p>Uptime: %s</p>
</body>
</html>`

func (h *Handler) statusPage(_ http.ResponseWriter, _ *http.Request) (any, error) {
	body := fmt.Sprintf(statusPageHTML,
		h.app.Name, h.app.Name, h.app.Version, h.app.Environment,
		time.Since(h.startedAt).Round(time.Second))

	return rawResponse{contentType: "text/html; charset=utf-8", body: []byte(body)}, nil
}

func (h *Handler) health(_ http.ResponseWriter, _ *http.Request) (any, error) {
	return map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	}, nil
}

func (h *Handler) apiInfo(_ http.ResponseWriter, _ *http.Request) (any, error) {
	return map[string]any{
		"name":        h.app.Name,
		"version":     h.app.Version,
		"environment": h.app.Environment,
	}, nil
}

// notFound answers any unknown path or method with the catalog's 404, so
// even routing misses produce the standard error envelope.
func (h *Handler) notFound(_ http.ResponseWriter, _ *http.Request) (any, error) {
	return nil, apperrors.NotFound
}

func (h *Handler) methodNotAllowed(_ http.ResponseWriter, r *http.Request) (any, error) {
	return nil, apperrors.NotFound.WithMessage(fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}
