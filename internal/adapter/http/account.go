package httpadapter

import "net/http"

func (h *Handler) handleMailAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.MailAccounts(r.Context(), requestUserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]accountJSON, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountJSON(a))
	}
	h.respondJSON(w, http.StatusOK, out)
}
