package repository

import (
	"time"

	"github.com/vfg2006/marketpulse-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

// seedDemoData popula as coleções com o conjunto de demonstração exibido
// pelo dashboard antes de qualquer integração real estar conectada
func (s *memoryStorage) seedDemoData() {
	now := time.Now()

	s.campaigns = append(s.campaigns,
		domain.Campaign{
			ID:          "1",
			Name:        "Summer Sale Campaign",
			Type:        "conversions",
			Platform:    "Facebook",
			Impressions: 15420,
			Clicks:      892,
			Spend:       "456.78",
			Status:      domain.CampaignStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		domain.Campaign{
			ID:          "2",
			Name:        "Brand Awareness Push",
			Type:        "awareness",
			Platform:    "Google Ads",
			Impressions: 28900,
			Clicks:      1245,
			Spend:       "789.50",
			Status:      domain.CampaignStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		domain.Campaign{
			ID:          "3",
			Name:        "Retargeting Campaign",
			Type:        "conversions",
			Platform:    "LinkedIn",
			Impressions: 8750,
			Clicks:      425,
			Spend:       "234.25",
			Status:      domain.CampaignStatusPaused,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	)

	s.metrics = append(s.metrics,
		domain.Metric{ID: "1", Name: "Total Impressions", Value: "324,567", Change: "+12.5%", Period: "30d", CreatedAt: now},
		domain.Metric{ID: "2", Name: "Total Clicks", Value: "18,923", Change: "+8.3%", Period: "30d", CreatedAt: now},
		domain.Metric{ID: "3", Name: "Conversion Rate", Value: "4.2%", Change: "-2.1%", Period: "30d", CreatedAt: now},
		domain.Metric{ID: "4", Name: "Cost Per Click", Value: "$2.34", Change: "-5.8%", Period: "30d", CreatedAt: now},
	)

	s.performance = append(s.performance,
		domain.PerformanceData{
			ID:          "1",
			Date:        "2024-01-01",
			Impressions: 45000,
			Clicks:      2200,
			Conversions: 180,
			Spend:       1200.0,
			Revenue:     5400.0,
			Platform:    strPtr("Facebook"),
			CreatedAt:   now,
		},
		domain.PerformanceData{
			ID:          "2",
			Date:        "2024-01-02",
			Impressions: 52000,
			Clicks:      2800,
			Conversions: 220,
			Spend:       1450.0,
			Revenue:     6200.0,
			Platform:    strPtr("Google Ads"),
			CreatedAt:   now,
		},
		domain.PerformanceData{
			ID:          "3",
			Date:        "2024-01-03",
			Impressions: 48000,
			Clicks:      2500,
			Conversions: 195,
			Spend:       1300.0,
			Revenue:     5850.0,
			Platform:    strPtr("LinkedIn"),
			CreatedAt:   now,
		},
	)

	lastSync := now
	s.integrations = append(s.integrations,
		domain.Integration{
			ID:        "1",
			Platform:  "Facebook",
			Status:    domain.IntegrationStatusConnected,
			AccountID: strPtr("fb_account_123"),
			LastSync:  &lastSync,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Integration{
			ID:        "2",
			Platform:  "Google Ads",
			Status:    domain.IntegrationStatusConnected,
			AccountID: strPtr("ga_account_456"),
			LastSync:  &lastSync,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Integration{
			ID:        "3",
			Platform:  "LinkedIn",
			Status:    domain.IntegrationStatusDisconnected,
			CreatedAt: now,
			UpdatedAt: now,
		},
		domain.Integration{
			ID:        "4",
			Platform:  "Twitter",
			Status:    domain.IntegrationStatusError,
			CreatedAt: now,
			UpdatedAt: now,
		},
	)
}
