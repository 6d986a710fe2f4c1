package port

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayload() TriggerPayload {
	return TriggerPayload{
		UserID:       "u-1",
		CampaignID:   "c-1",
		BusinessType: "dentists",
		Mode:         "standard",
		TargetCount:  10,
	}
}

func TestTriggerPayloadValidate(t *testing.T) {
	require.NoError(t, validPayload().Validate())

	tests := []struct {
		name   string
		mutate func(*TriggerPayload)
		want   string
	}{
		{"missing user", func(p *TriggerPayload) { p.UserID = "" }, "missing userId"},
		{"missing campaign", func(p *TriggerPayload) { p.CampaignID = "" }, "missing campaignId"},
		{"missing business type", func(p *TriggerPayload) { p.BusinessType = "" }, "missing businessType"},
		{"zero target", func(p *TriggerPayload) { p.TargetCount = 0 }, "targetCount must be positive"},
		{
			"cities and citySize together",
			func(p *TriggerPayload) { p.Cities = []string{"Miami"}; p.CitySize = "1M+" },
			"mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTriggerPayloadValidate_EitherAloneIsFine(t *testing.T) {
	p := validPayload()
	p.Cities = []string{"Miami", "Tampa"}
	require.NoError(t, p.Validate())

	p = validPayload()
	p.CitySize = "1M+"
	require.NoError(t, p.Validate())
}
