package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google"
	"github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/marketpulse-api/infrastructure/repository"
	"github.com/vfg2006/marketpulse-api/internal/api"
	"github.com/vfg2006/marketpulse-api/internal/config"
	"github.com/vfg2006/marketpulse-api/internal/usecases/analytics"
	"github.com/vfg2006/marketpulse-api/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O armazenamento é estado explícito do processo, injetado nos
	// serviços em vez de um singleton implícito
	var storageOpts []repository.MemoryOption
	if cfg.Storage.SeedDemoData {
		storageOpts = append(storageOpts, repository.WithDemoData())
	}
	storage := repository.NewMemoryStorage(storageOpts...)

	googleClient := googleclient.NewClient(cfg)
	googleIntegrator := google.New(cfg, googleClient)

	dashboardService := dashboarding.NewService(storage)
	analyticsService := analytics.NewService(cfg, googleIntegrator)

	if !analyticsService.Configured() {
		logrus.Warn("OAuth do Google não configurado; endpoints de analytics responderão aviso de setup")
	}

	server, err := api.New(cfg, dashboardService, analyticsService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
