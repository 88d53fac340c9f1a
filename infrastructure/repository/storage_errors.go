package repository

import (
	"errors"
	"fmt"
)

// Erros do contrato de armazenamento
var (
	ErrNotFound   = errors.New("record not found")
	ErrGenerateID = errors.New("error generating record ID")
)

// NotFoundError identifica qual registro não foi localizado
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com id %s não encontrado", e.Entity, e.ID)
}

// Unwrap permite verificar com errors.Is(err, ErrNotFound)
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
