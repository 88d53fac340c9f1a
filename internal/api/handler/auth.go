package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/marketpulse-api/internal/usecases/analytics"
	"github.com/vfg2006/marketpulse-api/pkg/apiErrors"
	"github.com/vfg2006/marketpulse-api/pkg/log"
)

type oauthURLResponse struct {
	OAuthURL      *string `json:"oauth_url"`
	SetupRequired bool    `json:"setup_required,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// GoogleAuthURL gera a URL de autorização do Google. Sem credenciais
// configuradas, responde um aviso estruturado de setup para o frontend
// renderizar o prompt de configuração, não uma falha dura.
func GoogleAuthURL(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		state := r.URL.Query().Get("state")

		authURL, err := service.AuthURL(state)
		if err != nil {
			if errors.Is(err, googleclient.ErrNotConfigured) {
				logger.Info("auth: OAuth do Google não configurado, respondendo aviso de setup")

				resp := oauthURLResponse{
					SetupRequired: true,
					Message:       "OAuth do Google não configurado. Defina GOOGLE_CLIENT_ID e GOOGLE_CLIENT_SECRET.",
				}
				json.NewEncoder(w).Encode(resp)
				return
			}

			logger.WithError(err).Error("auth: falha ao gerar URL de autorização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar URL de autorização", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(oauthURLResponse{OAuthURL: &authURL}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GoogleAuthCallback recebe o retorno do consentimento e redireciona o
// navegador de volta ao frontend com o resultado na query string. Os
// tokens nunca são persistidos no servidor.
func GoogleAuthCallback(frontendURL string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		code := query.Get("code")
		authError := query.Get("error")
		state := query.Get("state")

		params := url.Values{}

		switch {
		case authError != "":
			logger.WithField("error", authError).Warn("auth: consentimento negado pelo usuário")
			params.Set("auth", "error")
			params.Set("message", authError)

		case code == "":
			logger.Warn("auth: callback sem código de autorização")
			params.Set("auth", "error")
			params.Set("message", "missing_code")

		default:
			params.Set("auth", "success")
			params.Set("code", code)
			if state != "" {
				params.Set("state", state)
			}
		}

		redirectTo := frontendURL
		if u, err := url.Parse(frontendURL); err == nil {
			q := u.Query()
			for key, vals := range params {
				for _, v := range vals {
					q.Set(key, v)
				}
			}
			u.RawQuery = q.Encode()
			redirectTo = u.String()
		}

		http.Redirect(w, r, redirectTo, http.StatusFound)
	})
}
