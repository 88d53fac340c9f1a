package domain

import (
	"regexp"
	"time"
	"unicode/utf8"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusDraft     CampaignStatus = "draft"
)

// spend é sempre uma string decimal com no máximo duas casas, nunca float,
// para não acumular erro de arredondamento na exibição de moeda
var spendPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Platform    string         `json:"platform"`
	Impressions int            `json:"impressions"`
	Clicks      int            `json:"clicks"`
	Spend       string         `json:"spend"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusDraft:
		return true
	}
	return false
}

// Validate aplica as mesmas restrições na criação e na atualização parcial
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return newValidationError("name", "é obrigatório")
	}
	// Limite em caracteres, não em bytes: nomes acentuados contam cada
	// runa uma única vez
	if utf8.RuneCountInString(c.Name) > 200 {
		return newValidationError("name", "deve ter no máximo 200 caracteres")
	}
	if c.Type == "" {
		return newValidationError("type", "é obrigatório")
	}
	if c.Platform == "" {
		return newValidationError("platform", "é obrigatório")
	}
	if c.Impressions < 0 {
		return newValidationError("impressions", "deve ser maior ou igual a zero")
	}
	if c.Clicks < 0 {
		return newValidationError("clicks", "deve ser maior ou igual a zero")
	}
	if !spendPattern.MatchString(c.Spend) {
		return newValidationError("spend", "deve ser um valor decimal com até duas casas")
	}
	if !c.Status.Valid() {
		return newValidationError("status", "deve ser active, paused, completed ou draft")
	}
	return nil
}

type CreateCampaignRequest struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Platform    string         `json:"platform"`
	Spend       string         `json:"spend"`
	Impressions int            `json:"impressions"`
	Clicks      int            `json:"clicks"`
	Status      CampaignStatus `json:"status"`
}

// ToCampaign monta a entidade com os defaults de criação
func (r *CreateCampaignRequest) ToCampaign() *Campaign {
	status := r.Status
	if status == "" {
		status = CampaignStatusActive
	}

	return &Campaign{
		Name:        r.Name,
		Type:        r.Type,
		Platform:    r.Platform,
		Spend:       r.Spend,
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		Status:      status,
	}
}

// UpdateCampaignRequest é o patch parcial de uma campanha. Campos nil
// ficam intocados no registro, nunca são resetados para o default.
type UpdateCampaignRequest struct {
	Name        *string         `json:"name,omitempty"`
	Type        *string         `json:"type,omitempty"`
	Platform    *string         `json:"platform,omitempty"`
	Spend       *string         `json:"spend,omitempty"`
	Impressions *int            `json:"impressions,omitempty"`
	Clicks      *int            `json:"clicks,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
}

// Apply copia apenas os campos presentes no patch para a campanha
func (r *UpdateCampaignRequest) Apply(c *Campaign) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Type != nil {
		c.Type = *r.Type
	}
	if r.Platform != nil {
		c.Platform = *r.Platform
	}
	if r.Spend != nil {
		c.Spend = *r.Spend
	}
	if r.Impressions != nil {
		c.Impressions = *r.Impressions
	}
	if r.Clicks != nil {
		c.Clicks = *r.Clicks
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
}
