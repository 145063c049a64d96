// Package initializer wires the application together: logger, snapshot
// store, ledger, event bus and services.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/securebank/securebank/infra/persistence"
	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/eventbus"
	"github.com/securebank/securebank/pkg/ledger"
	pkgpersistence "github.com/securebank/securebank/pkg/persistence"
	"github.com/securebank/securebank/pkg/provider"
	accountsvc "github.com/securebank/securebank/pkg/service/account"
	authsvc "github.com/securebank/securebank/pkg/service/auth"
	chatsvc "github.com/securebank/securebank/pkg/service/chat"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
)

// Deps is everything a main needs to run the application.
type Deps struct {
	Logger    *slog.Logger
	Store     *ledger.Store
	Snapshots pkgpersistence.Store
	Bus       *eventbus.SimpleBus
	Accounts  *accountsvc.Service
	Reports   *reportsvc.Service
	Auth      *authsvc.Service
	Chat      *chatsvc.Service

	cfg *config.App
}

// InitializeDependencies builds the dependency graph and restores the
// ledger from the last snapshot, if any.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	snapshots, err := newSnapshotStore(cfg.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}

	store := ledger.New(cfg.Banking.AccountNumberStart)
	if err := restoreLedger(store, snapshots, cfg.Snapshot.LedgerKey, logger); err != nil {
		return nil, err
	}

	bus := eventbus.NewSimpleBus()
	bus.Subscribe(accountsvc.EventLowBalanceDetected, func(_ context.Context, e eventbus.Event) {
		if low, ok := e.(accountsvc.LowBalanceDetected); ok {
			logger.Warn("low balance detected",
				"account", low.AccountNumber,
				"balance", low.Balance.String(),
				"threshold", low.Threshold.String())
		}
	})

	deps := &Deps{
		Logger:    logger,
		Store:     store,
		Snapshots: snapshots,
		Bus:       bus,
		Accounts:  accountsvc.New(store, cfg.Banking, bus, logger),
		Reports: reportsvc.New(store, reportsvc.Config{
			LowBalanceThreshold: cfg.Banking.LowBalanceThreshold,
		}, logger),
		Auth: authsvc.New(snapshots, cfg.Snapshot.UsersKey, cfg.Jwt, logger),
		Chat: chatsvc.New(newCompleter(cfg.OpenAI, logger), cfg.OpenAI.MaxHistory, logger),
		cfg:  cfg,
	}
	return deps, nil
}

// SaveSnapshot persists the current ledger state.
func (d *Deps) SaveSnapshot(ctx context.Context) error {
	if err := pkgpersistence.SaveJSON(ctx, d.Snapshots, d.cfg.Snapshot.LedgerKey, d.Store.Snapshot()); err != nil {
		return fmt.Errorf("save ledger snapshot: %w", err)
	}
	d.Logger.Info("ledger snapshot saved", "key", d.cfg.Snapshot.LedgerKey)
	return nil
}

func newSnapshotStore(cfg config.Snapshot) (pkgpersistence.Store, error) {
	if cfg.DatabaseURL != "" {
		return persistence.Open(cfg.DatabaseURL)
	}
	return pkgpersistence.NewFileStore(cfg.Dir)
}

func restoreLedger(store *ledger.Store, snapshots pkgpersistence.Store, key string, logger *slog.Logger) error {
	var snap ledger.Snapshot
	ok, err := pkgpersistence.LoadJSON(context.Background(), snapshots, key, &snap)
	if err != nil {
		return fmt.Errorf("load ledger snapshot: %w", err)
	}
	if !ok {
		logger.Info("no ledger snapshot found, starting empty", "key", key)
		return nil
	}
	store.Restore(snap)
	logger.Info("ledger restored from snapshot",
		"key", key,
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions),
		"saved_at", snap.SavedAt)
	return nil
}

// newCompleter builds the chat delegate. An empty API key disables
// delegation; the assistant answers from templates only.
func newCompleter(cfg config.OpenAI, logger *slog.Logger) provider.Completer {
	if cfg.ApiKey == "" {
		logger.Info("no completion API key configured, assistant runs template-only")
		return nil
	}
	return provider.NewBreakerCompleter(provider.NewOpenAI(cfg, logger), logger)
}
