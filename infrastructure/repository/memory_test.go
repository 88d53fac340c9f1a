package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketpulse-api/internal/domain"
)

func newCampaignRequest() *domain.CreateCampaignRequest {
	return &domain.CreateCampaignRequest{
		Name:        "Summer Sale",
		Type:        "conversions",
		Platform:    "Facebook",
		Spend:       "456.78",
		Impressions: 100,
		Clicks:      10,
	}
}

func TestCreateCampaignAssignsUniqueIDs(t *testing.T) {
	storage := NewMemoryStorage()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		campaign, err := storage.CreateCampaign(newCampaignRequest())
		require.NoError(t, err)
		require.NotEmpty(t, campaign.ID)

		_, duplicated := seen[campaign.ID]
		require.False(t, duplicated, "ID duplicado: %s", campaign.ID)
		seen[campaign.ID] = struct{}{}

		assert.False(t, campaign.CreatedAt.IsZero())
		assert.False(t, campaign.UpdatedAt.IsZero())
	}

	campaigns, err := storage.GetCampaigns()
	require.NoError(t, err)
	assert.Len(t, campaigns, 50)

	// Todo registro criado aparece na listagem subsequente
	for _, c := range campaigns {
		_, ok := seen[c.ID]
		assert.True(t, ok)
	}
}

func TestGenerateUniqueIDRegeneratesOnCollision(t *testing.T) {
	// Simula uma coleção que já contém os três primeiros ids sorteados:
	// o gerador deve descartá-los e devolver o quarto candidato
	var candidates []string
	id, err := generateUniqueID(func(candidate string) bool {
		candidates = append(candidates, candidate)
		return len(candidates) <= 3
	})
	require.NoError(t, err)

	require.Len(t, candidates, 4)
	assert.Equal(t, candidates[3], id)

	// Nenhum candidato rejeitado pode vazar como id final
	for _, rejected := range candidates[:3] {
		assert.NotEqual(t, rejected, id)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	storage := NewMemoryStorage()

	req := newCampaignRequest()
	req.Spend = "100.555"

	_, err := storage.CreateCampaign(req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "spend", validationErr.Field)

	campaigns, err := storage.GetCampaigns()
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestUpdateCampaignPartialPatch(t *testing.T) {
	storage := NewMemoryStorage()

	created, err := storage.CreateCampaign(newCampaignRequest())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	impressions := 500
	updated, err := storage.UpdateCampaign(created.ID, &domain.UpdateCampaignRequest{
		Impressions: &impressions,
	})
	require.NoError(t, err)

	// Apenas impressions muda; os demais campos retêm os valores anteriores
	assert.Equal(t, 500, updated.Impressions)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Platform, updated.Platform)
	assert.Equal(t, created.Spend, updated.Spend)
	assert.Equal(t, created.Clicks, updated.Clicks)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateCampaignNotFound(t *testing.T) {
	storage := NewMemoryStorage(WithDemoData())

	before, err := storage.GetCampaigns()
	require.NoError(t, err)

	name := "novo nome"
	_, err = storage.UpdateCampaign("nao-existe", &domain.UpdateCampaignRequest{Name: &name})

	require.ErrorIs(t, err, ErrNotFound)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "campaign", notFoundErr.Entity)
	assert.Equal(t, "nao-existe", notFoundErr.ID)

	// Coleção permanece idêntica
	after, err := storage.GetCampaigns()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateCampaignInvalidPatchKeepsRecord(t *testing.T) {
	storage := NewMemoryStorage()

	created, err := storage.CreateCampaign(newCampaignRequest())
	require.NoError(t, err)

	badSpend := "12.999"
	_, err = storage.UpdateCampaign(created.ID, &domain.UpdateCampaignRequest{Spend: &badSpend})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)

	campaigns, err := storage.GetCampaigns()
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "456.78", campaigns[0].Spend)
}

func TestDeleteCampaign(t *testing.T) {
	storage := NewMemoryStorage()

	created, err := storage.CreateCampaign(newCampaignRequest())
	require.NoError(t, err)

	// Remover id inexistente responde false sem alterar a coleção
	deleted, err := storage.DeleteCampaign("nao-existe")
	require.NoError(t, err)
	assert.False(t, deleted)

	campaigns, _ := storage.GetCampaigns()
	assert.Len(t, campaigns, 1)

	deleted, err = storage.DeleteCampaign(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	campaigns, _ = storage.GetCampaigns()
	assert.Empty(t, campaigns)

	// Idempotente: segunda remoção do mesmo id responde false
	deleted, err = storage.DeleteCampaign(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetCampaignsSnapshot(t *testing.T) {
	storage := NewMemoryStorage()

	created, err := storage.CreateCampaign(newCampaignRequest())
	require.NoError(t, err)

	snapshot, err := storage.GetCampaigns()
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Mutações posteriores não alteram a listagem já retornada
	clicks := 999
	_, err = storage.UpdateCampaign(created.ID, &domain.UpdateCampaignRequest{Clicks: &clicks})
	require.NoError(t, err)

	assert.Equal(t, 10, snapshot[0].Clicks)
}

func TestIntegrationConnectStampsLastSync(t *testing.T) {
	storage := NewMemoryStorage()

	created, err := storage.CreateIntegration(&domain.CreateIntegrationRequest{
		Platform: "Google Ads",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntegrationStatusDisconnected, created.Status)
	assert.Nil(t, created.LastSync)

	before := time.Now()

	connected := domain.IntegrationStatusConnected
	updated, err := storage.UpdateIntegration(created.ID, &domain.UpdateIntegrationRequest{
		Status: &connected,
	})
	require.NoError(t, err)

	// Transição para connected sempre resulta em last_sync preenchido e
	// não mais antigo que a chamada
	require.NotNil(t, updated.LastSync)
	assert.False(t, updated.LastSync.Before(before))

	// Patch sem status não toca o last_sync
	apiKey := "key-abc"
	updated2, err := storage.UpdateIntegration(created.ID, &domain.UpdateIntegrationRequest{
		APIKey: &apiKey,
	})
	require.NoError(t, err)
	assert.Equal(t, updated.LastSync, updated2.LastSync)
}

func TestDeleteIntegration(t *testing.T) {
	storage := NewMemoryStorage(WithDemoData())

	integrations, err := storage.GetIntegrations()
	require.NoError(t, err)
	require.Len(t, integrations, 4)

	deleted, err := storage.DeleteIntegration(integrations[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	remaining, err := storage.GetIntegrations()
	require.NoError(t, err)
	assert.Len(t, remaining, 3)

	deleted, err = storage.DeleteIntegration("nao-existe")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDemoDataSeed(t *testing.T) {
	storage := NewMemoryStorage(WithDemoData())

	campaigns, err := storage.GetCampaigns()
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)
	assert.Equal(t, "Summer Sale Campaign", campaigns[0].Name)

	metrics, err := storage.GetMetrics()
	require.NoError(t, err)
	assert.Len(t, metrics, 4)

	performance, err := storage.GetPerformance()
	require.NoError(t, err)
	assert.Len(t, performance, 3)

	integrations, err := storage.GetIntegrations()
	require.NoError(t, err)
	assert.Len(t, integrations, 4)
}

func TestConcurrentCreates(t *testing.T) {
	storage := NewMemoryStorage()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			req := newCampaignRequest()
			req.Name = fmt.Sprintf("Campanha %d", n)
			_, err := storage.CreateCampaign(req)
			assert.NoError(t, err)
		}(i)
	}

	wg.Wait()

	campaigns, err := storage.GetCampaigns()
	require.NoError(t, err)
	require.Len(t, campaigns, workers)

	seen := make(map[string]struct{})
	for _, c := range campaigns {
		_, duplicated := seen[c.ID]
		assert.False(t, duplicated)
		seen[c.ID] = struct{}{}
	}
}
