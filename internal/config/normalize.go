package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOracle()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOracle() {
	if c.Oracle.APIKey == "" {
		if value, ok := os.LookupEnv("ORACLE_API_KEY"); ok {
			c.Oracle.APIKey = value
		}
	}
	c.Oracle.APIKey = strings.TrimSpace(c.Oracle.APIKey)
	c.Oracle.BaseURL = strings.TrimSpace(c.Oracle.BaseURL)
	if c.Oracle.BaseURL == "" {
		c.Oracle.BaseURL = defaultOracleBaseURL
	}
	c.Oracle.Model = strings.TrimSpace(c.Oracle.Model)
	if c.Oracle.Model == "" {
		c.Oracle.Model = defaultOracleModel
	}
	c.Oracle.Referer = strings.TrimSpace(c.Oracle.Referer)
	c.Oracle.Title = strings.TrimSpace(c.Oracle.Title)
	if c.Oracle.TimeoutSeconds <= 0 {
		c.Oracle.TimeoutSeconds = defaultOracleTimeoutSeconds
	}
	if c.Oracle.RetryAttempts <= 0 {
		c.Oracle.RetryAttempts = defaultOracleRetryAttempts
	}
	if c.Oracle.MaxInFlight <= 0 {
		c.Oracle.MaxInFlight = defaultOracleMaxInFlight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
