// Package scheduler contém o serviço de agendamento da recarga do dataset
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/internal/config"
)

type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService recarrega periodicamente o snapshot do dataset a
// partir da fonte configurada. Uma recarga que falha mantém o snapshot
// anterior em uso.
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	loader              dataset.Loader
	store               *dataset.Store
	config              DatasetReloadConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetReloadService(
	loader dataset.Loader,
	store *dataset.Store,
	cfg *config.Config,
) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.DatasetReload.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: scheduler,
		loader:    loader,
		store:     store,
		config:    reloadConfig,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	// Agendar a recarga do dataset
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset carrega um snapshot novo e o publica no store. Em caso de
// falha o snapshot corrente permanece válido.
func (s *DatasetReloadService) ReloadDataset() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando recarga do dataset")

	ds, err := s.loader.Load()
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao carregar dataset; snapshot anterior mantido")
		return err
	}

	s.store.Replace(ds)
	s.lastSyncError = ""

	logrus.Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go s.ReloadDataset()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"snapshot_loaded_at":     s.store.LoadedAt(),
	}
}
