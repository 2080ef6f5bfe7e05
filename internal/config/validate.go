package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateOracle(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	for name, weight := range map[string]float64{
		"matching.title_weight": m.TitleWeight,
		"matching.date_weight":  m.DateWeight,
		"matching.type_weight":  m.TypeWeight,
	} {
		if weight < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	if sum := m.TitleWeight + m.DateWeight + m.TypeWeight; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("matching weights must sum to 1, got %v", sum)
	}
	for name, value := range map[string]float64{
		"matching.accept_threshold": m.AcceptThreshold,
		"matching.margin_threshold": m.MarginThreshold,
		"matching.minimum_floor":    m.MinimumFloor,
		"matching.oracle_trust":     m.OracleTrust,
	} {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	if m.MinimumFloor > m.AcceptThreshold {
		return errors.New("matching.minimum_floor must not exceed matching.accept_threshold")
	}
	if m.DateWindowDays <= 0 {
		return errors.New("matching.date_window_days must be positive")
	}
	if m.EscalationTopK <= 0 {
		return errors.New("matching.escalation_top_k must be positive")
	}
	return nil
}

func (c *Config) validateOracle() error {
	if !c.Oracle.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Oracle.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/gavelmatch/config.toml"
		}
		return fmt.Errorf("oracle.api_key is required when oracle.enabled is true. Set ORACLE_API_KEY env var or edit %s (create with 'gavelmatch config init')", defaultPath)
	}
	if strings.TrimSpace(c.Oracle.BaseURL) == "" {
		return errors.New("oracle.base_url must be set")
	}
	if strings.TrimSpace(c.Oracle.Model) == "" {
		return errors.New("oracle.model must be set")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.Workers <= 0 {
		return errors.New("engine.workers must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
