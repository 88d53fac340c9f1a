package domain

import "time"

type IntegrationStatus string

const (
	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
	IntegrationStatusError        IntegrationStatus = "error"
)

type Integration struct {
	ID        string            `json:"id"`
	Platform  string            `json:"platform"`
	Status    IntegrationStatus `json:"status"`
	APIKey    *string           `json:"api_key,omitempty"`
	AccountID *string           `json:"account_id,omitempty"`
	LastSync  *time.Time        `json:"last_sync,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (s IntegrationStatus) Valid() bool {
	switch s {
	case IntegrationStatusConnected, IntegrationStatusDisconnected, IntegrationStatusError:
		return true
	}
	return false
}

func (i *Integration) Validate() error {
	if i.Platform == "" {
		return newValidationError("platform", "é obrigatório")
	}
	if !i.Status.Valid() {
		return newValidationError("status", "deve ser connected, disconnected ou error")
	}
	return nil
}

type CreateIntegrationRequest struct {
	Platform  string            `json:"platform"`
	Status    IntegrationStatus `json:"status"`
	APIKey    *string           `json:"api_key,omitempty"`
	AccountID *string           `json:"account_id,omitempty"`
}

func (r *CreateIntegrationRequest) ToIntegration() *Integration {
	status := r.Status
	if status == "" {
		status = IntegrationStatusDisconnected
	}

	return &Integration{
		Platform:  r.Platform,
		Status:    status,
		APIKey:    r.APIKey,
		AccountID: r.AccountID,
	}
}

// UpdateIntegrationRequest é o patch parcial de uma integração
type UpdateIntegrationRequest struct {
	Platform  *string            `json:"platform,omitempty"`
	Status    *IntegrationStatus `json:"status,omitempty"`
	APIKey    *string            `json:"api_key,omitempty"`
	AccountID *string            `json:"account_id,omitempty"`
}

// Apply copia apenas os campos presentes no patch para a integração.
// Retorna true quando o patch transiciona o status para connected, para
// que o chamador carimbe o last_sync.
func (r *UpdateIntegrationRequest) Apply(i *Integration) (connected bool) {
	if r.Platform != nil {
		i.Platform = *r.Platform
	}
	if r.Status != nil {
		i.Status = *r.Status
		connected = *r.Status == IntegrationStatusConnected
	}
	if r.APIKey != nil {
		i.APIKey = r.APIKey
	}
	if r.AccountID != nil {
		i.AccountID = r.AccountID
	}
	return connected
}
