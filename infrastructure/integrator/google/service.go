package google

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/marketpulse-api/internal/config"
)

type GoogleIntegrator struct {
	cfg    *config.Config
	Client googleclient.Client
}

func New(cfg *config.Config, client googleclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleIntegrator) BuildAuthURL(state string) (string, error) {
	return s.Client.BuildAuthURL(state)
}

func (s *GoogleIntegrator) ExchangeCode(code string) (*googledomain.TokenResponse, error) {
	return s.Client.ExchangeCode(code)
}

func (s *GoogleIntegrator) ListAccountSummaries(accessToken string) ([]googledomain.AccountSummary, error) {
	return s.Client.ListAccountSummaries(accessToken)
}

// GetCampaignReport busca o relatório bruto e o achata por campanha.
// Sem datas no filtro, o intervalo é os últimos 30 dias incluindo hoje.
func (s *GoogleIntegrator) GetCampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.CampaignReport, error) {
	if startDate == "" {
		startDate = time.Now().AddDate(0, 0, -30).Format(time.DateOnly)
	}
	if endDate == "" {
		endDate = time.Now().Format(time.DateOnly)
	}

	resp, err := s.Client.GetCampaignReport(accessToken, viewID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"view_id":    viewID,
			"start_date": startDate,
			"end_date":   endDate,
			"error":      err.Error(),
		}).Error("analytics: falha ao obter relatório de campanhas")
		return nil, err
	}

	report := FactoryCampaignReport(resp)

	logrus.WithFields(logrus.Fields{
		"view_id":   viewID,
		"campaigns": len(report.Campaigns),
	}).Debug("analytics: relatório de campanhas remontado com sucesso")

	return report, nil
}

// FactoryCampaignReport remonta a resposta aninhada da Reporting API em
// uma lista plana por campanha mais um resumo de totais. Uma linha só
// entra no resultado com pelo menos 3 dimensões e 5 métricas; valores
// não numéricos viram zero.
func FactoryCampaignReport(resp *googledomain.ReportResponse) *googledomain.CampaignReport {
	report := &googledomain.CampaignReport{
		Campaigns: make([]googledomain.CampaignEntry, 0),
		// Ausência de relatório é distinta de totais zerados: o mapa
		// só ganha as chaves quando existe um relatório na resposta
		TotalMetrics: map[string]int{},
	}

	if resp == nil || len(resp.Reports) == 0 {
		return report
	}

	rows := resp.Reports[0].Data.Rows

	var totalSessions, totalUsers, totalPageviews int

	for _, row := range rows {
		var values []string
		if len(row.Metrics) > 0 {
			values = row.Metrics[0].Values
		}

		if len(row.Dimensions) < 3 || len(values) < 5 {
			continue
		}

		// Ordem posicional fixa: source, medium, campanha
		entry := googledomain.CampaignEntry{
			Source:             row.Dimensions[0],
			Medium:             row.Dimensions[1],
			Name:               row.Dimensions[2],
			Sessions:           parseIntMetric(values[0]),
			Users:              parseIntMetric(values[1]),
			Pageviews:          parseIntMetric(values[2]),
			BounceRate:         parseFloatMetric(values[3]),
			AvgSessionDuration: parseFloatMetric(values[4]),
		}

		report.Campaigns = append(report.Campaigns, entry)

		totalSessions += entry.Sessions
		totalUsers += entry.Users
		totalPageviews += entry.Pageviews
	}

	report.TotalMetrics = map[string]int{
		"total_sessions":  totalSessions,
		"total_users":     totalUsers,
		"total_pageviews": totalPageviews,
	}

	return report
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseIntMetric aceita apenas dígitos; sinal ou qualquer outro
// caractere resulta em zero
func parseIntMetric(s string) int {
	if !isDigits(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseFloatMetric exige que a string, removido o ponto decimal,
// contenha apenas dígitos
func parseFloatMetric(s string) float64 {
	if !isDigits(strings.ReplaceAll(s, ".", "")) {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
