package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"gavelmatch/internal/config"
	"gavelmatch/internal/logging"
	"gavelmatch/internal/services/oracle"
	"gavelmatch/internal/verdicts"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
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

// ensureLogger builds the process logger from the loaded config. Falls back
// to a console logger at info level when the config could not be loaded.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{Writer: os.Stderr}
		if cfg, err := c.ensureConfig(); err == nil {
			opts.Format = cfg.Logging.Format
			opts.Level = cfg.Logging.Level
		}
		logger, err := logging.New(opts)
		if err != nil {
			logger, _ = logging.New(logging.Options{Writer: os.Stderr})
		}
		c.logger = logger
	})
	return c.logger
}

// openStore opens the verdict store for the configured state directory.
// Callers own the returned store and must close it.
func (c *commandContext) openStore() (*verdicts.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return verdicts.Open(cfg)
}

// oracleClient returns a configured oracle client, or nil when the oracle
// is disabled.
func (c *commandContext) oracleClient() (*oracle.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Oracle.Enabled {
		return nil, nil
	}
	return oracle.NewClient(oracle.Config{
		APIKey:         cfg.Oracle.APIKey,
		BaseURL:        cfg.Oracle.BaseURL,
		Model:          cfg.Oracle.Model,
		Referer:        cfg.Oracle.Referer,
		Title:          cfg.Oracle.Title,
		TimeoutSeconds: cfg.Oracle.TimeoutSeconds,
		RetryAttempts:  cfg.Oracle.RetryAttempts,
		MaxInFlight:    cfg.Oracle.MaxInFlight,
	}), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
