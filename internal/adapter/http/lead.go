package httpadapter

import "net/http"

// handleCampaignLeads returns the leads of one campaign, the read endpoint
// the dashboard polls while the workflow engine works.
func (h *Handler) handleCampaignLeads(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	leads, err := h.svc.CampaignLeads(r.Context(), requestUserID(r), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]leadJSON, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadJSON(l))
	}
	h.respondJSON(w, http.StatusOK, out)
}
