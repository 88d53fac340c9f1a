package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketpulse-api/internal/domain"
	"github.com/vfg2006/marketpulse-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
	"github.com/vfg2006/marketpulse-api/pkg/log"
)

func ListCampaigns(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := service.ListCampaigns()
		if err != nil {
			logger.WithError(err).Error("campaigns: falha ao listar campanhas")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateCampaign(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var createRequest domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.CreateCampaign(&createRequest)
		if err != nil {
			logger.WithError(err).Warn("campaigns: falha ao criar campanha")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCampaign(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var patch domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.UpdateCampaign(id, &patch)
		if err != nil {
			logger.WithField("campaign_id", id).WithError(err).Warn("campaigns: falha ao atualizar campanha")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteCampaign(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		deleted, err := service.DeleteCampaign(id)
		if err != nil {
			logger.WithField("campaign_id", id).WithError(err).Error("campaigns: falha ao remover campanha")
			writeStorageError(w, err)
			return
		}

		// Idempotente: remover um id inexistente responde false, não erro
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deleted); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
