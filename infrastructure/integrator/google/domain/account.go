package domain

// Tipos de wire da Management API v3 (accountSummaries)

type AccountSummariesResponse struct {
	Items []AccountSummary `json:"items"`
}

type AccountSummary struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Kind          string        `json:"kind,omitempty"`
	WebProperties []WebProperty `json:"webProperties,omitempty"`
}

type WebProperty struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Profile é a view (perfil) cujo ID alimenta os relatórios de campanha
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenResponse representa a resposta do endpoint de troca de tokens OAuth
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}
