package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

type scheduleJSON struct {
	LaunchTime   string   `json:"launchTime"`
	Timezone     string   `json:"timezone"`
	CampaignIDs  []string `json:"campaignIds"`
	DeliveryMode string   `json:"deliveryMode"`
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSchedule(r.Context(), requestUserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if s == nil {
		h.respondJSON(w, http.StatusOK, nil)
		return
	}
	ids := make([]string, len(s.CampaignIDs))
	for i, id := range s.CampaignIDs {
		ids[i] = id.String()
	}
	h.respondJSON(w, http.StatusOK, scheduleJSON{
		LaunchTime:   s.LaunchTime,
		Timezone:     s.Timezone,
		CampaignIDs:  ids,
		DeliveryMode: string(s.DeliveryMode),
	})
}

func (h *Handler) handlePutSchedule(w http.ResponseWriter, r *http.Request) {
	var body scheduleJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, port.BadRequest("Invalid JSON body"))
		return
	}
	ids := make([]uuid.UUID, 0, len(body.CampaignIDs))
	for _, raw := range body.CampaignIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.respondError(w, port.BadRequest("campaignIds contains an invalid id"))
			return
		}
		ids = append(ids, id)
	}
	err := h.svc.PutSchedule(r.Context(), requestUserID(r), domain.Schedule{
		LaunchTime:   body.LaunchTime,
		Timezone:     body.Timezone,
		CampaignIDs:  ids,
		DeliveryMode: domain.DeliveryMode(body.DeliveryMode),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
