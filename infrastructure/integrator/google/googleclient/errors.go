package googleclient

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indica que as credenciais OAuth do Google não foram
// definidas no ambiente
var ErrNotConfigured = errors.New("google OAuth não configurado")

// UpstreamError carrega o status e o corpo devolvidos pela API do Google
// para diagnóstico no cliente
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream retornou status %d: %s", e.Operation, e.StatusCode, e.Body)
}
