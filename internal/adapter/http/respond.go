package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/auth"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorBody{Error: msg})
}

// internalError logs err and answers 500 without exposing it.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	h.writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

// identity returns the caller set by the auth middleware.
func identity(r *http.Request) (auth.Identity, bool) {
	return auth.IdentityFrom(r.Context())
}
