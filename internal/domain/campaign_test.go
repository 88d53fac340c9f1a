package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() *Campaign {
	return &Campaign{
		Name:        "Summer Sale",
		Type:        "conversions",
		Platform:    "Facebook",
		Impressions: 100,
		Clicks:      10,
		Spend:       "456.78",
		Status:      CampaignStatusActive,
	}
}

func TestCampaignValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Campaign)
		wantField string
	}{
		{
			name:   "campanha válida",
			mutate: func(c *Campaign) {},
		},
		{
			name:   "spend inteiro é aceito",
			mutate: func(c *Campaign) { c.Spend = "100" },
		},
		{
			name:   "spend com duas casas é aceito",
			mutate: func(c *Campaign) { c.Spend = "100.50" },
		},
		{
			name:   "spend com uma casa é aceito",
			mutate: func(c *Campaign) { c.Spend = "100.5" },
		},
		{
			name:      "spend com três casas é rejeitado",
			mutate:    func(c *Campaign) { c.Spend = "100.555" },
			wantField: "spend",
		},
		{
			name:      "spend não numérico é rejeitado",
			mutate:    func(c *Campaign) { c.Spend = "abc" },
			wantField: "spend",
		},
		{
			name:      "spend negativo é rejeitado",
			mutate:    func(c *Campaign) { c.Spend = "-10.00" },
			wantField: "spend",
		},
		{
			name:      "nome vazio é rejeitado",
			mutate:    func(c *Campaign) { c.Name = "" },
			wantField: "name",
		},
		{
			name: "nome acima de 200 caracteres é rejeitado",
			mutate: func(c *Campaign) {
				c.Name = strings.Repeat("a", 201)
			},
			wantField: "name",
		},
		{
			// 150 runas acentuadas ocupam 300 bytes; o limite conta
			// caracteres, então o nome é aceito
			name:   "nome acentuado de 150 caracteres é aceito",
			mutate: func(c *Campaign) { c.Name = strings.Repeat("ã", 150) },
		},
		{
			name:      "nome acentuado de 201 caracteres é rejeitado",
			mutate:    func(c *Campaign) { c.Name = strings.Repeat("ã", 201) },
			wantField: "name",
		},
		{
			name:      "type vazio é rejeitado",
			mutate:    func(c *Campaign) { c.Type = "" },
			wantField: "type",
		},
		{
			name:      "platform vazio é rejeitado",
			mutate:    func(c *Campaign) { c.Platform = "" },
			wantField: "platform",
		},
		{
			name:      "impressions negativo é rejeitado",
			mutate:    func(c *Campaign) { c.Impressions = -1 },
			wantField: "impressions",
		},
		{
			name:      "clicks negativo é rejeitado",
			mutate:    func(c *Campaign) { c.Clicks = -1 },
			wantField: "clicks",
		},
		{
			name:      "status fora do conjunto é rejeitado",
			mutate:    func(c *Campaign) { c.Status = "archived" },
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := validCampaign()
			tt.mutate(campaign)

			err := campaign.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateCampaignRequestDefaults(t *testing.T) {
	req := &CreateCampaignRequest{
		Name:     "Push",
		Type:     "awareness",
		Platform: "Google Ads",
		Spend:    "10.00",
	}

	campaign := req.ToCampaign()

	// Status ausente assume o default active
	assert.Equal(t, CampaignStatusActive, campaign.Status)
	assert.NoError(t, campaign.Validate())
}

func TestUpdateCampaignRequestApply(t *testing.T) {
	campaign := validCampaign()
	impressions := 500

	patch := &UpdateCampaignRequest{Impressions: &impressions}
	patch.Apply(campaign)

	// Apenas o campo presente no patch muda
	assert.Equal(t, 500, campaign.Impressions)
	assert.Equal(t, "Summer Sale", campaign.Name)
	assert.Equal(t, "456.78", campaign.Spend)
	assert.Equal(t, CampaignStatusActive, campaign.Status)
}

func TestUpdateIntegrationRequestApply(t *testing.T) {
	integration := &Integration{
		Platform: "LinkedIn",
		Status:   IntegrationStatusDisconnected,
	}

	connected := IntegrationStatusConnected
	patch := &UpdateIntegrationRequest{Status: &connected}

	assert.True(t, patch.Apply(integration))
	assert.Equal(t, IntegrationStatusConnected, integration.Status)

	apiKey := "key-123"
	patch = &UpdateIntegrationRequest{APIKey: &apiKey}

	assert.False(t, patch.Apply(integration))
	assert.Equal(t, "key-123", *integration.APIKey)
	// Status permanece o da última transição
	assert.Equal(t, IntegrationStatusConnected, integration.Status)
}
