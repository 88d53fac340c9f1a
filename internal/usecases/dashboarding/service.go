package dashboarding

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketpulse-api/infrastructure/repository"
	"github.com/vfg2006/marketpulse-api/internal/domain"
)

// DashboardService expõe as operações do dashboard para a camada HTTP
type DashboardService interface {
	ListCampaigns() ([]domain.Campaign, error)
	CreateCampaign(req *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(id string, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(id string) (bool, error)

	ListMetrics() ([]domain.Metric, error)
	ListPerformance() ([]domain.PerformanceData, error)

	ListIntegrations() ([]domain.Integration, error)
	CreateIntegration(req *domain.CreateIntegrationRequest) (*domain.Integration, error)
	UpdateIntegration(id string, patch *domain.UpdateIntegrationRequest) (*domain.Integration, error)
	DeleteIntegration(id string) (bool, error)
}

type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) DashboardService {
	return &Service{storage: storage}
}

func (s *Service) ListCampaigns() ([]domain.Campaign, error) {
	return s.storage.GetCampaigns()
}

func (s *Service) CreateCampaign(req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.storage.CreateCampaign(req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"platform":    campaign.Platform,
	}).Info("dashboard: campanha criada")

	return campaign, nil
}

func (s *Service) UpdateCampaign(id string, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	return s.storage.UpdateCampaign(id, patch)
}

func (s *Service) DeleteCampaign(id string) (bool, error) {
	deleted, err := s.storage.DeleteCampaign(id)
	if err != nil {
		return false, err
	}

	if deleted {
		logrus.WithField("campaign_id", id).Info("dashboard: campanha removida")
	}

	return deleted, nil
}

func (s *Service) ListMetrics() ([]domain.Metric, error) {
	return s.storage.GetMetrics()
}

func (s *Service) ListPerformance() ([]domain.PerformanceData, error) {
	return s.storage.GetPerformance()
}

func (s *Service) ListIntegrations() ([]domain.Integration, error) {
	return s.storage.GetIntegrations()
}

func (s *Service) CreateIntegration(req *domain.CreateIntegrationRequest) (*domain.Integration, error) {
	integration, err := s.storage.CreateIntegration(req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"platform":       integration.Platform,
	}).Info("dashboard: integração criada")

	return integration, nil
}

func (s *Service) UpdateIntegration(id string, patch *domain.UpdateIntegrationRequest) (*domain.Integration, error) {
	return s.storage.UpdateIntegration(id, patch)
}

func (s *Service) DeleteIntegration(id string) (bool, error) {
	deleted, err := s.storage.DeleteIntegration(id)
	if err != nil {
		return false, err
	}

	if deleted {
		logrus.WithField("integration_id", id).Info("dashboard: integração removida")
	}

	return deleted, nil
}
