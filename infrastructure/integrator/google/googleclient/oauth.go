package googleclient

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
)

// Escopos fixos solicitados ao Google: leitura do Analytics e e-mail do usuário
var oauthScopes = []string{
	"https://www.googleapis.com/auth/analytics.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
}

// BuildAuthURL monta a URL de autorização OAuth. O token opaco de state é
// repassado sem interpretação para o round-trip de proteção CSRF do chamador.
func (c *GoogleClient) BuildAuthURL(state string) (string, error) {
	if c.Cfg.Google.ClientID == "" {
		return "", ErrNotConfigured
	}

	params := url.Values{}
	params.Set("client_id", c.Cfg.Google.ClientID)
	params.Set("redirect_uri", c.Cfg.Google.RedirectURI)
	params.Set("scope", strings.Join(oauthScopes, " "))
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	// Sempre exibe o seletor de contas do Google
	params.Set("prompt", "select_account")
	params.Set("include_granted_scopes", "true")

	if state != "" {
		params.Set("state", state)
	}

	return c.Cfg.Google.AuthURL + "?" + params.Encode(), nil
}

// ExchangeCode troca o código de autorização por tokens de acesso e refresh
func (c *GoogleClient) ExchangeCode(code string) (*googledomain.TokenResponse, error) {
	if c.Cfg.Google.ClientID == "" || c.Cfg.Google.ClientSecret == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.Cfg.Google.ClientID)
	form.Set("client_secret", c.Cfg.Google.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.Cfg.Google.RedirectURI)

	resp, err := c.httpClient.PostForm(c.Cfg.Google.TokenURL, form)
	if err != nil {
		logrus.WithError(err).Error("google: erro ao chamar o endpoint de token")
		return nil, err
	}

	body, err := c.handleResponse("exchange_code", resp)
	if err != nil {
		return nil, err
	}

	var tokens googledomain.TokenResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar resposta de token")
		return nil, err
	}

	return &tokens, nil
}
