package domain

import "time"

// Metric é um snapshot de exibição pré-formatado ("324,567", "+12.5%").
// Não há invariante numérico sobre value e change.
type Metric struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Change    string    `json:"change"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Metric) Validate() error {
	if m.Name == "" {
		return newValidationError("name", "é obrigatório")
	}
	if m.Value == "" {
		return newValidationError("value", "é obrigatório")
	}
	if m.Change == "" {
		return newValidationError("change", "é obrigatório")
	}
	return nil
}
