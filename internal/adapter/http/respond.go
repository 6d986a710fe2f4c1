package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"leadflow/internal/core/port"
)

// errorBody is the failure wire shape used by every endpoint.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps a *port.StatusError onto its status and structured
// body. Anything else is an internal failure: logged with detail, surfaced
// as an opaque 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var se *port.StatusError
	if errors.As(err, &se) {
		h.respondJSON(w, se.Status, errorBody{Error: se.Message, Details: se.Details, Hint: se.Hint})
		return
	}
	h.logger.Error("internal error", slog.Any("error", err))
	h.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
}
