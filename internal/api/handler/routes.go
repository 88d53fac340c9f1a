package handler

import (
	"net/http"

	"github.com/vfg2006/marketpulse-api/internal/api/handler/router"
	"github.com/vfg2006/marketpulse-api/internal/usecases/analytics"
	"github.com/vfg2006/marketpulse-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodPatch,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
	}
}

func Metrics(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: ListMetrics(service),
		},
		{
			Path:    "/api/performance",
			Method:  http.MethodGet,
			Handler: ListPerformance(service),
		},
	}
}

func Integrations(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(service),
		},
		{
			Path:    "/api/integrations",
			Method:  http.MethodPost,
			Handler: CreateIntegration(service),
		},
		{
			Path:    "/api/integrations/:id",
			Method:  http.MethodPatch,
			Handler: UpdateIntegration(service),
		},
		{
			Path:    "/api/integrations/:id",
			Method:  http.MethodDelete,
			Handler: DeleteIntegration(service),
		},
	}
}

func GoogleAuth(service analytics.AnalyticsService, frontendURL string) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/google/url",
			Method:  http.MethodGet,
			Handler: GoogleAuthURL(service),
		},
		{
			Path:    "/api/auth/google/callback",
			Method:  http.MethodGet,
			Handler: GoogleAuthCallback(frontendURL),
		},
	}
}

func Analytics(service analytics.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/accounts",
			Method:  http.MethodGet,
			Handler: AnalyticsAccounts(service),
		},
		{
			Path:    "/api/analytics/campaigns",
			Method:  http.MethodGet,
			Handler: AnalyticsCampaigns(service),
		},
	}
}
