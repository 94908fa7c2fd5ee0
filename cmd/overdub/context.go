package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"overdub/internal/config"
	"overdub/internal/logging"
	"overdub/internal/snapshot"
	"overdub/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared file logger. Log output goes to the log
// directory rather than the terminal so command output stays parseable; every
// record of one invocation carries the same session id.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Outputs: []string{filepath.Join(cfg.Paths.LogDir, "overdub.log")},
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(logging.String("session_id", uuid.NewString()))
	})
	return c.logger, c.loggerErr
}

// withStore opens the snapshot store, loads current state (falling back to
// defaults on first run or an unreadable payload), and hands both to fn.
func (c *commandContext) withStore(cmd *cobra.Command, fn func(ctx context.Context, st *store.Store, snap snapshot.Snapshot) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	snap, err := c.loadSnapshot(ctx, st, logger)
	if err != nil {
		return err
	}
	return fn(ctx, st, snap)
}

func (c *commandContext) loadSnapshot(ctx context.Context, st *store.Store, logger *slog.Logger) (snapshot.Snapshot, error) {
	payload, ok, err := st.LoadInitial(ctx)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	if !ok {
		return snapshot.Default(), nil
	}
	snap, err := snapshot.Decode(payload, logger)
	if err != nil {
		logger.Warn("stored snapshot unreadable, starting from defaults", logging.Error(err))
		return snapshot.Default(), nil
	}
	return snap, nil
}

// viewSnapshot runs fn against current state without persisting anything.
func (c *commandContext) viewSnapshot(cmd *cobra.Command, fn func(cfg *config.Config, snap snapshot.Snapshot) error) error {
	return c.withStore(cmd, func(_ context.Context, _ *store.Store, snap snapshot.Snapshot) error {
		cfg, _ := c.ensureConfig()
		return fn(cfg, snap)
	})
}

// updateSnapshot loads current state, applies fn, and persists the result as
// a full replacement write.
func (c *commandContext) updateSnapshot(cmd *cobra.Command, fn func(snap snapshot.Snapshot) (snapshot.Snapshot, error)) error {
	return c.withStore(cmd, func(ctx context.Context, st *store.Store, snap snapshot.Snapshot) error {
		next, err := fn(snap)
		if err != nil {
			return err
		}
		payload, err := snapshot.Marshal(next)
		if err != nil {
			return err
		}
		return st.Replace(ctx, payload)
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
