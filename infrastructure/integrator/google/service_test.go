package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/googleclient/mocks"
	"github.com/vfg2006/marketpulse-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestFactoryCampaignReport(t *testing.T) {
	tests := []struct {
		name     string
		response *googledomain.ReportResponse
		validate func(t *testing.T, report *googledomain.CampaignReport)
	}{
		{
			name: "linha completa é remontada com valores posicionais",
			response: &googledomain.ReportResponse{
				Reports: []googledomain.Report{
					{
						Data: googledomain.ReportData{
							Rows: []googledomain.ReportRow{
								{
									Dimensions: []string{"google", "cpc", "Spring Sale"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"120", "45", "300", "0.42", "95.5"}},
									},
								},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, report *googledomain.CampaignReport) {
				require.Len(t, report.Campaigns, 1)

				entry := report.Campaigns[0]
				assert.Equal(t, "Spring Sale", entry.Name)
				assert.Equal(t, "google", entry.Source)
				assert.Equal(t, "cpc", entry.Medium)
				assert.Equal(t, 120, entry.Sessions)
				assert.Equal(t, 45, entry.Users)
				assert.Equal(t, 300, entry.Pageviews)
				assert.Equal(t, 0.42, entry.BounceRate)
				assert.Equal(t, 95.5, entry.AvgSessionDuration)

				assert.Equal(t, 120, report.TotalMetrics["total_sessions"])
				assert.Equal(t, 45, report.TotalMetrics["total_users"])
				assert.Equal(t, 300, report.TotalMetrics["total_pageviews"])
			},
		},
		{
			name: "totais acumulam sobre todas as linhas incluídas",
			response: &googledomain.ReportResponse{
				Reports: []googledomain.Report{
					{
						Data: googledomain.ReportData{
							Rows: []googledomain.ReportRow{
								{
									Dimensions: []string{"google", "cpc", "A"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"100", "50", "200", "0.1", "60"}},
									},
								},
								{
									Dimensions: []string{"facebook", "social", "B"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"30", "20", "80", "0.5", "45"}},
									},
								},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, report *googledomain.CampaignReport) {
				require.Len(t, report.Campaigns, 2)
				assert.Equal(t, 130, report.TotalMetrics["total_sessions"])
				assert.Equal(t, 70, report.TotalMetrics["total_users"])
				assert.Equal(t, 280, report.TotalMetrics["total_pageviews"])
			},
		},
		{
			name: "linha com menos de 3 dimensões ou 5 métricas é descartada",
			response: &googledomain.ReportResponse{
				Reports: []googledomain.Report{
					{
						Data: googledomain.ReportData{
							Rows: []googledomain.ReportRow{
								{
									Dimensions: []string{"google", "cpc"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"10", "5", "20", "0.1", "30"}},
									},
								},
								{
									Dimensions: []string{"google", "cpc", "C"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"10", "5", "20", "0.1"}},
									},
								},
								{
									Dimensions: []string{"google", "cpc", "D"},
									Metrics:    nil,
								},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, report *googledomain.CampaignReport) {
				assert.Empty(t, report.Campaigns)
				// O relatório existe, então os totais são zerados explícitos
				assert.Equal(t, 0, report.TotalMetrics["total_sessions"])
				assert.Len(t, report.TotalMetrics, 3)
			},
		},
		{
			name: "valores não numéricos viram zero",
			response: &googledomain.ReportResponse{
				Reports: []googledomain.Report{
					{
						Data: googledomain.ReportData{
							Rows: []googledomain.ReportRow{
								{
									Dimensions: []string{"(direct)", "(none)", "(not set)"},
									Metrics: []googledomain.DateRangeValues{
										{Values: []string{"-12", "abc", "1e3", "0.42.1", ""}},
									},
								},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, report *googledomain.CampaignReport) {
				require.Len(t, report.Campaigns, 1)

				entry := report.Campaigns[0]
				// Parse inteiro exige somente dígitos: sinal e notação científica não contam
				assert.Equal(t, 0, entry.Sessions)
				assert.Equal(t, 0, entry.Users)
				assert.Equal(t, 0, entry.Pageviews)
				assert.Equal(t, 0.0, entry.BounceRate)
				assert.Equal(t, 0.0, entry.AvgSessionDuration)
			},
		},
		{
			name:     "resposta sem relatório produz listas e totais vazios",
			response: &googledomain.ReportResponse{},
			validate: func(t *testing.T, report *googledomain.CampaignReport) {
				assert.NotNil(t, report.Campaigns)
				assert.Empty(t, report.Campaigns)
				// Ausência de relatório é distinta de totais zerados
				assert.Empty(t, report.TotalMetrics)
				assert.NotNil(t, report.TotalMetrics)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := FactoryCampaignReport(tt.response)
			tt.validate(t, report)
		})
	}
}

func TestGetCampaignReportDefaultsDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	var gotStart, gotEnd string
	mockClient.EXPECT().
		GetCampaignReport("token", "12345", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, startDate, endDate string) (*googledomain.ReportResponse, error) {
			gotStart = startDate
			gotEnd = endDate
			return &googledomain.ReportResponse{}, nil
		})

	integrator := New(&config.Config{}, mockClient)

	_, err := integrator.GetCampaignReport("token", "12345", "", "")
	require.NoError(t, err)

	// Intervalo default: últimos 30 dias incluindo hoje
	assert.Equal(t, time.Now().Format(time.DateOnly), gotEnd)
	assert.Equal(t, time.Now().AddDate(0, 0, -30).Format(time.DateOnly), gotStart)
}

func TestGetCampaignReportKeepsExplicitDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetCampaignReport("token", "12345", "2024-01-01", "2024-01-31").
		Return(&googledomain.ReportResponse{}, nil)

	integrator := New(&config.Config{}, mockClient)

	_, err := integrator.GetCampaignReport("token", "12345", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
}
