package handler

import (
	"errors"
	"net/http"
	"regexp"

	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/marketpulse-api/internal/usecases/analytics"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
	"github.com/vfg2006/marketpulse-api/pkg/log"
	"github.com/vfg2006/marketpulse-api/pkg/utils"
)

// Datas relativas aceitas pela Reporting API, repassadas sem tradução
var relativeDatePattern = regexp.MustCompile(`^(today|yesterday|\d+daysAgo)$`)

// validReportDate aceita vazio (o integrador aplica o default), os tokens
// relativos da Reporting API e datas de calendário YYYY-MM-DD
func validReportDate(date string) bool {
	if date == "" || relativeDatePattern.MatchString(date) {
		return true
	}

	_, err := utils.ParseDate(date)
	return err == nil
}

type accountsResponse struct {
	Accounts []googledomain.AccountSummary `json:"accounts"`
}

// writeAnalyticsError traduz os erros do integrador para a resposta da API.
// Erros de upstream carregam o corpo devolvido pelo Google para diagnóstico.
func writeAnalyticsError(w http.ResponseWriter, err error) {
	if errors.Is(err, googleclient.ErrNotConfigured) {
		apiErrors.WriteError(w, apiErrors.ErrOAuthNotConfigured, "Credenciais OAuth do Google não configuradas", nil)
		return
	}

	var upstreamErr *googleclient.UpstreamError
	if errors.As(err, &upstreamErr) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro na API do Google Analytics", map[string]interface{}{
			"upstream_status": upstreamErr.StatusCode,
			"upstream_body":   upstreamErr.Body,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar o Google Analytics", nil)
}

func AnalyticsAccounts(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accessToken := r.URL.Query().Get("access_token")
		if accessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "access_token é obrigatório", nil)
			return
		}

		accounts, err := service.AccountSummaries(accessToken)
		if err != nil {
			logger.WithError(err).Error("analytics: falha ao listar contas do Analytics")
			writeAnalyticsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accountsResponse{Accounts: accounts}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func AnalyticsCampaigns(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		accessToken := query.Get("access_token")
		if accessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "access_token é obrigatório", nil)
			return
		}

		viewID := query.Get("view_id")
		if viewID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "view_id é obrigatório", nil)
			return
		}

		startDate := query.Get("start_date")
		if !validReportDate(startDate) {
			logger.WithFields(log.Fields{
				"view_id":    viewID,
				"start_date": startDate,
			}).Warn("analytics: parâmetro start_date inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"start_date deve estar no formato YYYY-MM-DD ou ser uma data relativa (today, yesterday, NdaysAgo)", nil)
			return
		}

		endDate := query.Get("end_date")
		if !validReportDate(endDate) {
			logger.WithFields(log.Fields{
				"view_id":  viewID,
				"end_date": endDate,
			}).Warn("analytics: parâmetro end_date inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"end_date deve estar no formato YYYY-MM-DD ou ser uma data relativa (today, yesterday, NdaysAgo)", nil)
			return
		}

		report, err := service.CampaignReport(accessToken, viewID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"view_id": viewID,
				"error":   err.Error(),
			}).Error("analytics: falha ao obter relatório de campanhas")

			writeAnalyticsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
