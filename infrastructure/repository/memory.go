package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketpulse-api/internal/domain"
	"github.com/vfg2006/marketpulse-api/pkg/utils"
)

// memoryStorage guarda as coleções em slices na ordem de inserção.
// O mutex serializa todas as mutações; leituras devolvem cópias para
// que uma listagem já retornada nunca observe mutações posteriores.
type memoryStorage struct {
	mu sync.RWMutex

	campaigns    []domain.Campaign
	metrics      []domain.Metric
	performance  []domain.PerformanceData
	integrations []domain.Integration
}

type MemoryOption func(*memoryStorage)

// WithDemoData carrega o conjunto de dados de demonstração do dashboard
func WithDemoData() MemoryOption {
	return func(s *memoryStorage) {
		s.seedDemoData()
	}
}

func NewMemoryStorage(opts ...MemoryOption) Storage {
	storage := &memoryStorage{
		campaigns:    make([]domain.Campaign, 0),
		metrics:      make([]domain.Metric, 0),
		performance:  make([]domain.PerformanceData, 0),
		integrations: make([]domain.Integration, 0),
	}

	for _, opt := range opts {
		opt(storage)
	}

	return storage
}

// generateUniqueID sorteia ids até encontrar um que ainda não exista na
// coleção. Sempre chamado sob o lock de escrita, para que duas criações
// concorrentes nunca aceitem o mesmo id.
func generateUniqueID(exists func(string) bool) (string, error) {
	for {
		id, err := utils.GenerateID()
		if err != nil {
			return "", errors.Wrap(ErrGenerateID, err.Error())
		}
		if !exists(id) {
			return id, nil
		}
	}
}

func (s *memoryStorage) campaignIDExists(id string) bool {
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			return true
		}
	}
	return false
}

func (s *memoryStorage) integrationIDExists(id string) bool {
	for i := range s.integrations {
		if s.integrations[i].ID == id {
			return true
		}
	}
	return false
}

func (s *memoryStorage) GetCampaigns() ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out, nil
}

func (s *memoryStorage) CreateCampaign(req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	campaign := req.ToCampaign()
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := generateUniqueID(s.campaignIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	campaign.ID = id
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	s.campaigns = append(s.campaigns, *campaign)

	return campaign, nil
}

func (s *memoryStorage) UpdateCampaign(id string, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}

		// O patch é aplicado sobre uma cópia: se a revalidação falhar,
		// o registro armazenado permanece intacto
		updated := s.campaigns[i]
		patch.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return nil, err
		}

		updated.UpdatedAt = time.Now()
		s.campaigns[i] = updated

		out := updated
		return &out, nil
	}

	return nil, &NotFoundError{Entity: "campaign", ID: id}
}

func (s *memoryStorage) DeleteCampaign(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (s *memoryStorage) GetMetrics() ([]domain.Metric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Metric, len(s.metrics))
	copy(out, s.metrics)
	return out, nil
}

func (s *memoryStorage) GetPerformance() ([]domain.PerformanceData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PerformanceData, len(s.performance))
	copy(out, s.performance)
	return out, nil
}

func (s *memoryStorage) GetIntegrations() ([]domain.Integration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Integration, len(s.integrations))
	copy(out, s.integrations)
	return out, nil
}

func (s *memoryStorage) CreateIntegration(req *domain.CreateIntegrationRequest) (*domain.Integration, error) {
	integration := req.ToIntegration()
	if err := integration.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := generateUniqueID(s.integrationIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	integration.ID = id
	integration.CreatedAt = now
	integration.UpdatedAt = now

	s.integrations = append(s.integrations, *integration)

	return integration, nil
}

func (s *memoryStorage) UpdateIntegration(id string, patch *domain.UpdateIntegrationRequest) (*domain.Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.integrations {
		if s.integrations[i].ID != id {
			continue
		}

		updated := s.integrations[i]
		connected := patch.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return nil, err
		}

		now := time.Now()
		updated.UpdatedAt = now
		if connected {
			// Transição para connected sempre carimba o last_sync
			lastSync := now
			updated.LastSync = &lastSync
		}

		s.integrations[i] = updated

		out := updated
		return &out, nil
	}

	return nil, &NotFoundError{Entity: "integration", ID: id}
}

func (s *memoryStorage) DeleteIntegration(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.integrations {
		if s.integrations[i].ID == id {
			s.integrations = append(s.integrations[:i], s.integrations[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}
