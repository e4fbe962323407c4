// Package persistence selects the durable store behind likes and selections.
package persistence

import (
	"context"
	"log/slog"

	"lunchradar/config"
	"lunchradar/internal/domain/repository"
	"lunchradar/internal/infra/persistence/firestore"
	"lunchradar/internal/infra/persistence/memory"
	"lunchradar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of gateway repositories provided to Fx
type Repositories struct {
	fx.Out

	Likes      repository.LikeRepository
	Selections repository.SelectionRepository
}

// NewRepositories builds the repositories for the configured provider
func NewRepositories(params Params) (Repositories, error) {
	provider := config.PersistenceProviderMemory
	if params.Config.Persistence != nil && params.Config.Persistence.Provider != "" {
		provider = params.Config.Persistence.Provider
	}

	switch provider {
	case config.PersistenceProviderMemory:
		params.Logger.Warn("Using in-memory persistence, likes and selections are lost on restart")
		store := memory.NewStore()

		return Repositories{Likes: store, Selections: store}, nil

	case config.PersistenceProviderPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for postgres provider")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL persistence")

		return Repositories{
			Likes:      postgres.NewLikeRepository(db),
			Selections: postgres.NewSelectionRepository(db),
		}, nil

	case config.PersistenceProviderFirestore:
		client, err := firestore.NewClient(params.Ctx, params.Config.Firebase, params.Logger)
		if err != nil {
			return Repositories{}, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return Repositories{
			Likes:      firestore.NewLikeRepository(client),
			Selections: firestore.NewSelectionRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence provider: %s", provider)
	}
}
