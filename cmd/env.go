package cmd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/diag"
	"github.com/mindfool/mindfool/internal/screens/services"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/settings"
	"github.com/mindfool/mindfool/internal/store"
	"github.com/mindfool/mindfool/internal/streak"
)

// env holds the opened store and the collaborators built on it.
type env struct {
	store  *store.Store
	logger hclog.Logger
	svc    services.Services
}

// openEnv opens the store and wires history, settings, streaks and the
// session lifecycle. Callers must Close the env.
func openEnv(cmd *cobra.Command) (*env, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := diag.New(diag.Options{Level: level, Output: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("opened store", "path", dbPath)

	prefs := settings.NewService(st.KVRepo(), logger)
	loaded := prefs.Load(cmd.Context())

	hist := st.HistoryRepo()
	return &env{
		store:  st,
		logger: logger,
		svc: services.Services{
			Lifecycle: session.NewLifecycle(session.Config{
				Recorder:    hist,
				Logger:      logger,
				DefaultMode: loaded.DefaultMode,
			}),
			History:  hist,
			Streaks:  streak.NewEngine(streak.Config{}),
			Settings: prefs,
			Logger:   logger,
		},
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}
