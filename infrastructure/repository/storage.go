package repository

import (
	"github.com/vfg2006/marketpulse-api/internal/domain"
)

// Storage é o contrato de armazenamento do dashboard. As quatro coleções
// são independentes entre si (não há chaves estrangeiras). Métricas e
// dados de performance expõem apenas leitura.
type Storage interface {
	GetCampaigns() ([]domain.Campaign, error)
	CreateCampaign(req *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(id string, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(id string) (bool, error)

	GetMetrics() ([]domain.Metric, error)
	GetPerformance() ([]domain.PerformanceData, error)

	GetIntegrations() ([]domain.Integration, error)
	CreateIntegration(req *domain.CreateIntegrationRequest) (*domain.Integration, error)
	UpdateIntegration(id string, patch *domain.UpdateIntegrationRequest) (*domain.Integration, error)
	DeleteIntegration(id string) (bool, error)
}
