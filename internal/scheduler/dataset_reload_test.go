package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/retailbot-api/internal/config"
	"github.com/vfg2006/retailbot-api/internal/domain"
)

func newService(t *testing.T) (*DatasetReloadService, *mocks.MockLoader, *dataset.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockLoader(ctrl)
	store := dataset.NewStore()

	cfg := &config.Config{
		DatasetReload: config.DatasetReload{
			CronSchedule: "0 */6 * * *",
			Enabled:      false,
		},
	}

	return NewDatasetReloadService(mockLoader, store, cfg), mockLoader, store
}

func TestDatasetReloadService_ReloadDataset(t *testing.T) {
	t.Run("Recarga com sucesso - deve publicar o novo snapshot", func(t *testing.T) {
		service, mockLoader, store := newService(t)

		loaded := &domain.Dataset{
			Sales: []domain.SaleRecord{
				{Date: "2024-12-01", Store: "Downtown Store", Product: "Scarf", Category: "Clothing", Quantity: 1, Total: 19.99},
			},
		}
		mockLoader.EXPECT().Load().Return(loaded, nil)

		err := service.ReloadDataset()

		assert.NoError(t, err)

		snapshot, err := store.Snapshot()
		assert.NoError(t, err)
		assert.Len(t, snapshot.Sales, 1)
	})

	t.Run("Falha na carga - deve manter o snapshot anterior", func(t *testing.T) {
		service, mockLoader, store := newService(t)

		previous := &domain.Dataset{
			Sales: []domain.SaleRecord{
				{Date: "2024-12-01", Store: "Downtown Store", Product: "Scarf", Category: "Clothing", Quantity: 1, Total: 19.99},
			},
		}
		store.Replace(previous)

		mockLoader.EXPECT().Load().Return(nil, errors.New("fonte indisponível"))

		err := service.ReloadDataset()

		assert.Error(t, err)

		snapshot, snapErr := store.Snapshot()
		assert.NoError(t, snapErr)
		assert.Equal(t, previous, snapshot)

		status := service.GetStatus()
		assert.Equal(t, "fonte indisponível", status["last_sync_error"])
	})

	t.Run("Falha seguida de sucesso - deve limpar o erro registrado", func(t *testing.T) {
		service, mockLoader, _ := newService(t)

		mockLoader.EXPECT().Load().Return(nil, errors.New("fonte indisponível"))
		assert.Error(t, service.ReloadDataset())

		mockLoader.EXPECT().Load().Return(&domain.Dataset{}, nil)
		assert.NoError(t, service.ReloadDataset())

		status := service.GetStatus()
		assert.Equal(t, "", status["last_sync_error"])
	})
}

func TestDatasetReloadService_GetStatus(t *testing.T) {
	service, _, _ := newService(t)

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
