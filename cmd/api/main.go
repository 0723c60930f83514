package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/internal/api"
	"github.com/vfg2006/retailbot-api/internal/config"
	"github.com/vfg2006/retailbot-api/internal/scheduler"
	"github.com/vfg2006/retailbot-api/internal/tooling"
	"github.com/vfg2006/retailbot-api/internal/usecases/analyzing"
	"github.com/vfg2006/retailbot-api/internal/usecases/authenticating"
	"github.com/vfg2006/retailbot-api/internal/usecases/querying"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := dataset.NewFileLoader(cfg.Dataset.Source)
	store := dataset.NewStore()

	// Carga inicial do dataset. Uma falha aqui não derruba a API: os
	// endpoints respondem indisponibilidade até a próxima recarga bem-sucedida.
	if ds, err := loader.Load(); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do dataset")
	} else {
		store.Replace(ds)
	}

	authenticator := authenticating.NewService(cfg)
	analyticsService := analyzing.NewService(store)
	queryService := querying.NewService(store)
	reportService := reporting.NewService(store)

	dispatcher := tooling.NewDispatcher(analyticsService, queryService, reportService)

	// Inicializa o agendador de recarga do dataset
	datasetReloadService := scheduler.NewDatasetReloadService(loader, store, cfg)

	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		queryService,
		reportService,
		dispatcher,
		authenticator,
		datasetReloadService,
	)
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
