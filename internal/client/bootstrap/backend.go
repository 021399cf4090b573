// Package bootstrap собирает бэкенд и хранилища клиента по конфигурации.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"goodnotes/internal/client/adapters/memory"
	"goodnotes/internal/client/adapters/rest"
	"goodnotes/internal/client/app/stores"
	"goodnotes/internal/client/config"
	"goodnotes/internal/client/ports/api"
	"goodnotes/pkg/logger"
)

// Константы для логирования.
const (
	LogLocalBackend = "using in-memory backend"
	LogRESTBackend  = "using REST backend"

	ErrCreateMetrics    = "failed to register client metrics"
	ErrCreateRESTClient = "failed to create REST client"
)

// Backend объединяет реализации портов заметок и задач.
type Backend struct {
	Notes       api.NotesAPI
	ActionItems api.ActionItemsAPI
}

// Stores - хранилища клиента поверх одного бэкенда.
type Stores struct {
	Notes       *stores.NotesStore
	ActionItems *stores.ActionItemsStore
}

// NewBackend создает бэкенд в памяти при cfg.Local или REST клиент.
// Метрики клиента регистрируются в reg, если он задан.
func NewBackend(ctx context.Context, cfg *config.APIConfig, reg prometheus.Registerer) (Backend, error) {
	log := logger.Log(ctx)

	if cfg.Local {
		log.Info(ctx, LogLocalBackend)
		local := memory.New()
		return Backend{Notes: local, ActionItems: local}, nil
	}

	var opts []rest.Option
	if reg != nil {
		metrics, err := rest.NewMetrics(reg)
		if err != nil {
			return Backend{}, fmt.Errorf("%s: %w", ErrCreateMetrics, err)
		}
		opts = append(opts, rest.WithMetrics(metrics))
	}

	client, err := rest.NewClientFromConfig(cfg, opts...)
	if err != nil {
		return Backend{}, fmt.Errorf("%s: %w", ErrCreateRESTClient, err)
	}

	log.Info(ctx, LogRESTBackend, zap.String("base_url", client.BaseURL()))
	return Backend{
		Notes:       rest.NewNotesClient(client),
		ActionItems: rest.NewActionItemsClient(client),
	}, nil
}

// NewStores создает хранилища поверх backend.
func NewStores(backend Backend) Stores {
	return Stores{
		Notes:       stores.NewNotesStore(backend.Notes),
		ActionItems: stores.NewActionItemsStore(backend.ActionItems),
	}
}
