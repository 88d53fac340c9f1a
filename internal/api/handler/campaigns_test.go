package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketpulse-api/infrastructure/repository"
	"github.com/vfg2006/marketpulse-api/internal/api/handler/router"
	"github.com/vfg2006/marketpulse-api/internal/domain"
	"github.com/vfg2006/marketpulse-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
	"github.com/vfg2006/marketpulse-api/pkg/log"
)

// newDashboardRouter monta o router real sobre o armazenamento em memória,
// exercitando as rotas do jeito que o servidor as registra
func newDashboardRouter(opts ...repository.MemoryOption) http.Handler {
	log.SetupTestLogger()

	service := dashboarding.NewService(repository.NewMemoryStorage(opts...))

	routes := Campaigns(service)
	routes = append(routes, Metrics(service)...)
	routes = append(routes, Integrations(service)...)

	return router.New(router.WithRoutes(routes...))
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestCampaignLifecycle(t *testing.T) {
	r := newDashboardRouter()

	// Criação
	createBody := []byte(`{
		"name": "Black Friday",
		"type": "social",
		"platform": "facebook",
		"spend": "1500.00",
		"impressions": 10000,
		"clicks": 250
	}`)

	resp := doRequest(t, r, http.MethodPost, "/api/campaigns", createBody)
	require.Equal(t, http.StatusOK, resp.Code)

	var created domain.Campaign
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Black Friday", created.Name)
	// Status omitido assume active
	assert.Equal(t, domain.CampaignStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	// Listagem
	resp = doRequest(t, r, http.MethodGet, "/api/campaigns", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var listed []domain.Campaign
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Atualização parcial: somente o status muda
	resp = doRequest(t, r, http.MethodPatch, "/api/campaigns/"+created.ID, []byte(`{"status": "paused"}`))
	require.Equal(t, http.StatusOK, resp.Code)

	var updated domain.Campaign
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, domain.CampaignStatusPaused, updated.Status)
	assert.Equal(t, "Black Friday", updated.Name)
	assert.Equal(t, "1500.00", updated.Spend)

	// Remoção responde o booleano cru
	resp = doRequest(t, r, http.MethodDelete, "/api/campaigns/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "true", string(bytes.TrimSpace(resp.Body.Bytes())))

	// Remover de novo é idempotente: false, não erro
	resp = doRequest(t, r, http.MethodDelete, "/api/campaigns/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "false", string(bytes.TrimSpace(resp.Body.Bytes())))
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{
			name:          "nome ausente",
			body:          `{"type": "social", "platform": "facebook", "spend": "100.00"}`,
			expectedField: "name",
		},
		{
			name:          "spend com formato inválido",
			body:          `{"name": "X", "type": "social", "platform": "facebook", "spend": "abc"}`,
			expectedField: "spend",
		},
		{
			name:          "status fora do conjunto fechado",
			body:          `{"name": "X", "type": "social", "platform": "facebook", "spend": "100", "status": "archived"}`,
			expectedField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDashboardRouter()

			resp := doRequest(t, r, http.MethodPost, "/api/campaigns", []byte(tt.body))
			require.Equal(t, http.StatusBadRequest, resp.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)

			details, ok := apiErr.Details.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.expectedField, details["field"])
		})
	}
}

func TestCreateCampaignMalformedBody(t *testing.T) {
	r := newDashboardRouter()

	resp := doRequest(t, r, http.MethodPost, "/api/campaigns", []byte(`{not json`))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	r := newDashboardRouter()

	resp := doRequest(t, r, http.MethodPatch, "/api/campaigns/zzz999", []byte(`{"name": "Nova"}`))
	require.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrRecordNotFound, apiErr.Code)

	details, ok := apiErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "campaign", details["entity"])
	assert.Equal(t, "zzz999", details["id"])
}

func TestUpdateCampaignInvalidPatch(t *testing.T) {
	r := newDashboardRouter()

	resp := doRequest(t, r, http.MethodPost, "/api/campaigns", []byte(`{
		"name": "Válida", "type": "search", "platform": "google", "spend": "10.00"
	}`))
	require.Equal(t, http.StatusOK, resp.Code)

	var created domain.Campaign
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	// Patch que viola a validação não pode corromper o registro
	resp = doRequest(t, r, http.MethodPatch, "/api/campaigns/"+created.ID, []byte(`{"spend": "10.999"}`))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, r, http.MethodGet, "/api/campaigns", nil)
	var listed []domain.Campaign
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "10.00", listed[0].Spend)
}

func TestListMetricsAndPerformanceWithDemoData(t *testing.T) {
	r := newDashboardRouter(repository.WithDemoData())

	resp := doRequest(t, r, http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var metrics []domain.Metric
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &metrics))
	assert.Len(t, metrics, 4)

	resp = doRequest(t, r, http.MethodGet, "/api/performance", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var performance []domain.PerformanceData
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &performance))
	assert.Len(t, performance, 3)
}

func TestIntegrationLifecycle(t *testing.T) {
	r := newDashboardRouter()

	resp := doRequest(t, r, http.MethodPost, "/api/integrations", []byte(`{
		"platform": "google_ads",
		"api_key": "gads_key_1"
	}`))
	require.Equal(t, http.StatusOK, resp.Code)

	var created domain.Integration
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	// Status omitido assume disconnected e nunca há last_sync na criação
	assert.Equal(t, domain.IntegrationStatusDisconnected, created.Status)
	assert.Nil(t, created.LastSync)

	// Conectar carimba o last_sync
	resp = doRequest(t, r, http.MethodPatch, "/api/integrations/"+created.ID, []byte(`{"status": "connected"}`))
	require.Equal(t, http.StatusOK, resp.Code)

	var connected domain.Integration
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &connected))
	assert.Equal(t, domain.IntegrationStatusConnected, connected.Status)
	require.NotNil(t, connected.LastSync)

	resp = doRequest(t, r, http.MethodDelete, "/api/integrations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "true", string(bytes.TrimSpace(resp.Body.Bytes())))
}
