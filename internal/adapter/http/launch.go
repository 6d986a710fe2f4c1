package httpadapter

import (
	"encoding/json"
	"net/http"

	"leadflow/internal/core/port"
)

// launchBody is the orchestration request body. campaignId present means
// re-run; targetCount and companyDescription are required for new
// campaigns only.
type launchBody struct {
	Name               string   `json:"name"`
	BusinessType       string   `json:"businessType"`
	CompanyDescription string   `json:"companyDescription"`
	Cities             []string `json:"cities"`
	CitySize           string   `json:"citySize"`
	ToneOfVoice        string   `json:"toneOfVoice"`
	CampaignGoal       string   `json:"campaignGoal"`
	MagicLink          string   `json:"magicLink"`
	ExampleEmail       string   `json:"exampleEmail"`
	BusinessLinkText   string   `json:"businessLinkText"`
	CampaignID         string   `json:"campaignId"`
	TargetCount        int      `json:"targetCount"`
	Mode               string   `json:"mode"`
	GmailEmail         string   `json:"gmailEmail"`
	Country            string   `json:"country"`
}

type launchResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	CampaignID string       `json:"campaignId"`
	Campaign   campaignJSON `json:"campaign"`
	Notify     string       `json:"notify,omitempty"`
}

// handleLaunch runs the campaign launch orchestration. A webhook delivery
// failure does not fail the response: by that point campaign state and
// credit consumption are committed, and the engine may still pick the run
// up. The notify field carries the distinction for clients that care.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	var body launchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, port.BadRequest("Invalid JSON body"))
		return
	}

	result, err := h.svc.Launch(r.Context(), requestUserID(r), port.LaunchRequest{
		Name:               body.Name,
		BusinessType:       body.BusinessType,
		CompanyDescription: body.CompanyDescription,
		Cities:             body.Cities,
		CitySize:           body.CitySize,
		ToneOfVoice:        body.ToneOfVoice,
		CampaignGoal:       body.CampaignGoal,
		MagicLink:          body.MagicLink,
		ExampleEmail:       body.ExampleEmail,
		BusinessLinkText:   body.BusinessLinkText,
		CampaignID:         body.CampaignID,
		TargetCount:        body.TargetCount,
		Mode:               body.Mode,
		GmailEmail:         body.GmailEmail,
		Country:            body.Country,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, launchResponse{
		Success:    true,
		Message:    result.Message,
		CampaignID: result.Campaign.ID.String(),
		Campaign:   toCampaignJSON(result.Campaign),
		Notify:     string(result.Notify),
	})
}
