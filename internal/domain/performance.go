package domain

import "time"

// PerformanceData é uma linha diária de desempenho agregado.
// A data é mantida como string no formato fornecido pelo chamador.
type PerformanceData struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Platform    *string   `json:"platform,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *PerformanceData) Validate() error {
	if p.Date == "" {
		return newValidationError("date", "é obrigatório")
	}
	if p.Impressions < 0 {
		return newValidationError("impressions", "deve ser maior ou igual a zero")
	}
	if p.Clicks < 0 {
		return newValidationError("clicks", "deve ser maior ou igual a zero")
	}
	if p.Conversions < 0 {
		return newValidationError("conversions", "deve ser maior ou igual a zero")
	}
	if p.Spend < 0 {
		return newValidationError("spend", "deve ser maior ou igual a zero")
	}
	if p.Revenue < 0 {
		return newValidationError("revenue", "deve ser maior ou igual a zero")
	}
	return nil
}
