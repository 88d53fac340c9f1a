package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/marketpulse-api/infrastructure/repository"
	"github.com/vfg2006/marketpulse-api/internal/domain"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
)

// writeStorageError traduz os erros do contrato de armazenamento para a
// resposta padronizada da API
func writeStorageError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), map[string]interface{}{
			"field": validationErr.Field,
		})
		return
	}

	var notFoundErr *repository.NotFoundError
	if errors.As(err, &notFoundErr) {
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, notFoundErr.Error(), map[string]interface{}{
			"entity": notFoundErr.Entity,
			"id":     notFoundErr.ID,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao acessar o armazenamento", nil)
}
