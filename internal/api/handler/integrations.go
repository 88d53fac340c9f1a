package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketpulse-api/internal/domain"
	"github.com/vfg2006/marketpulse-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
	"github.com/vfg2006/marketpulse-api/pkg/log"
)

func ListIntegrations(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		integrations, err := service.ListIntegrations()
		if err != nil {
			logger.WithError(err).Error("integrations: falha ao listar integrações")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(integrations); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateIntegration(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var createRequest domain.CreateIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		integration, err := service.CreateIntegration(&createRequest)
		if err != nil {
			logger.WithError(err).Warn("integrations: falha ao criar integração")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(integration); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateIntegration(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração é obrigatório", nil)
			return
		}

		var patch domain.UpdateIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		integration, err := service.UpdateIntegration(id, &patch)
		if err != nil {
			logger.WithField("integration_id", id).WithError(err).Warn("integrations: falha ao atualizar integração")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(integration); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteIntegration(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração é obrigatório", nil)
			return
		}

		deleted, err := service.DeleteIntegration(id)
		if err != nil {
			logger.WithField("integration_id", id).WithError(err).Error("integrations: falha ao remover integração")
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deleted); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
