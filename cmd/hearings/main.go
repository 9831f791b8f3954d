// Command hearings is the composition root: it builds the stores and
// services and hands them to the cobra command tree.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driven/seed"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/core/services"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, configDir := openConfig()
	settingsSvc := services.NewSettingsService(configStore)

	app, err := wire(ctx, settingsSvc.Get())
	if err != nil {
		logger.Error("start-up failed: %v", err)
		return err
	}
	defer func() {
		if err := app.close(); err != nil {
			logger.Warn("closing store: %v", err)
		}
	}()

	var watcher driven.ConfigWatcher
	if path := configStore.Path(); path != "" {
		watcher = file.NewWatcher(path)
	}

	cli.SetVersion(version)
	cli.SetHearingService(app.hearings)
	cli.SetViewService(app.views)
	cli.SetHearingValidator(app.validator)
	cli.SetSettingsService(settingsSvc)
	cli.SetTUIConfig(&cli.TUIConfig{
		Session:  app.session,
		Settings: settingsSvc,
		Watcher:  watcher,
		LogDir:   configDir,
	})

	return cli.Execute()
}

// openConfig returns the file-backed config store, or an in-memory one when
// the config directory cannot be used. The second value is the directory.
func openConfig() (driven.ConfigStore, string) {
	dir, err := file.DefaultDir()
	if err == nil {
		var store *file.ConfigStore
		if store, err = file.NewConfigStore(dir); err == nil {
			return store, dir
		}
	}
	logger.Warn("using in-memory settings: %v", err)
	return memory.NewConfigStore(), ""
}

// application holds the services built for one process.
type application struct {
	hearings  *services.HearingService
	views     *services.ViewService
	validator *services.HearingValidator
	session   *services.TableSession
	close     func() error
}

// wire builds the store for the configured backend, loads the seed records
// and constructs the services on top.
func wire(ctx context.Context, settings domain.AppSettings) (*application, error) {
	store, closeStore, err := openStore(ctx, settings.Backend)
	if err != nil {
		return nil, err
	}

	hearings := services.NewHearingService(store)

	logger.Section("Seed records")
	records, err := seed.NewLoader(settings.SeedFile).Load(ctx)
	if err == nil {
		err = hearings.Load(ctx, records)
	}
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("loading seed records: %w", err)
	}

	views := services.NewViewService(hearings)
	validator := services.NewHearingValidator()

	return &application{
		hearings:  hearings,
		views:     views,
		validator: validator,
		session:   services.NewTableSession(hearings, views, validator, settings.PageSize),
		close:     closeStore,
	}, nil
}

func openStore(ctx context.Context, backend domain.StorageBackend) (driven.HearingStore, func() error, error) {
	switch backend {
	case domain.BackendSQLite:
		db, err := sqlite.NewStore(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return db.HearingStore(), db.Close, nil
	default:
		return memory.NewHearingStore(), func() error { return nil }, nil
	}
}
