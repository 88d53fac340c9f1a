package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Google   Google   `mapstructure:",squash"`
	Frontend Frontend `mapstructure:",squash"`
	Static   Static   `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Google struct {
	ClientID      string `mapstructure:"google_client_id"`
	ClientSecret  string `mapstructure:"google_client_secret"`
	RedirectURI   string `mapstructure:"google_redirect_uri"`
	AuthURL       string `mapstructure:"google_auth_url"`
	TokenURL      string `mapstructure:"google_token_url"`
	ManagementURL string `mapstructure:"google_management_url"`
	ReportingURL  string `mapstructure:"google_reporting_url"`
}

type Frontend struct {
	// URL base para onde o callback OAuth redireciona o navegador
	URL string `mapstructure:"frontend_url"`
}

type Static struct {
	// Diretório do build do frontend (dist); vazio desativa o fallback SPA
	Dir string `mapstructure:"static_dir"`
}

type Storage struct {
	SeedDemoData bool `mapstructure:"seed_demo_data"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:5000/api/auth/google/callback")
	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_MANAGEMENT_URL", "https://www.googleapis.com/analytics/v3/management")
	viper.SetDefault("GOOGLE_REPORTING_URL", "https://analyticsreporting.googleapis.com/v4")

	viper.SetDefault("FRONTEND_URL", "/")
	viper.SetDefault("STATIC_DIR", "dist")
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
