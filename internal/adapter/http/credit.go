package httpadapter

import "net/http"

func (h *Handler) handleCreditsToday(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.CreditsToday(r.Context(), requestUserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}
