package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

// created wraps a handler result that should respond with 201 instead of
// the default 200.
type created struct {
	data    any
	message string
}

// rawResponse bypasses JSON entirely: the body is written as-is with the
// given content type. Only valid on SkipEnvelope routes.
type rawResponse struct {
	contentType string
	body        []byte
}

// finalize runs fn and turns its result into the wire response. Success
// values pass through the response normalizer; every error, from any
// pipeline stage, goes through writeError.
func (h *Handler) finalize(spec RouteSpec, fn endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fn(w, r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if spec.SkipEnvelope {
			if raw, ok := result.(rawResponse); ok {
				w.Header().Set("Content-Type", raw.contentType)
				w.WriteHeader(http.StatusOK)
				w.Write(raw.body) //nolint:errcheck
				return
			}
			writeJSON(w, r, http.StatusOK, result)
			return
		}

		status := http.StatusOK
		var envelope models.SuccessEnvelope

		switch v := result.(type) {
		case models.SuccessEnvelope:
			// Wrapping is idempotent: a ready-made envelope passes through.
			envelope = v
		case models.Paginated:
			// Pagination metadata is lifted beside the data, never nested
			// under it.
			envelope = models.NewSuccessEnvelope(v.Data, "", v.Meta)
		case created:
			status = http.StatusCreated
			envelope = models.NewSuccessEnvelope(v.data, v.message, nil)
		default:
			envelope = models.NewSuccessEnvelope(v, "", nil)
		}

		writeJSON(w, r, status, envelope)
	}
}

// writeError is the single translation boundary between application errors
// and the wire. Unknown errors become 500/70000 with the internal message
// logged but never echoed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	appErr := apperrors.From(err)

	log.Error().
		Str("method", r.Method).
		Str("url", r.URL.Path).
		Int("status", appErr.Status).
		Str("code", appErr.Code).
		Err(err).
		Msg("request failed")

	envelope := models.ErrorEnvelope{
		Success:    false,
		StatusCode: appErr.Status,
		Code:       appErr.Code,
		Message:    appErr.Message,
		Errors:     appErr.Details,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Method:     r.Method,
	}

	writeJSON(w, r, appErr.Status, envelope)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// decodeJSON reads the request body into dst, mapping malformed payloads to
// the catalog's bad-request error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.BadRequest.WithMessage("Malformed JSON body")
	}
	return nil
}
