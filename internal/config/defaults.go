package config

const (
	defaultStateDir  = "~/.local/share/gavelmatch/state"
	defaultExportDir = "~/.local/share/gavelmatch/exports"
	defaultLogDir    = "~/.local/share/gavelmatch/logs"

	defaultTitleWeight     = 0.50
	defaultDateWeight      = 0.35
	defaultTypeWeight      = 0.15
	defaultAcceptThreshold = 0.85
	defaultMarginThreshold = 0.15
	defaultMinimumFloor    = 0.40
	defaultDateWindowDays  = 3
	defaultEscalationTopK  = 5
	defaultOracleTrust     = 0.75

	defaultOracleBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultOracleModel          = "openai/gpt-4o-mini"
	defaultOracleTitle          = "Gavelmatch Disambiguator"
	defaultOracleTimeoutSeconds = 30
	defaultOracleRetryAttempts  = 5
	defaultOracleMaxInFlight    = 2

	defaultEngineWorkers = 4

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:  defaultStateDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Matching: Matching{
			TitleWeight:     defaultTitleWeight,
			DateWeight:      defaultDateWeight,
			TypeWeight:      defaultTypeWeight,
			AcceptThreshold: defaultAcceptThreshold,
			MarginThreshold: defaultMarginThreshold,
			MinimumFloor:    defaultMinimumFloor,
			DateWindowDays:  defaultDateWindowDays,
			EscalationTopK:  defaultEscalationTopK,
			OracleTrust:     defaultOracleTrust,
		},
		Oracle: Oracle{
			Enabled:        true,
			BaseURL:        defaultOracleBaseURL,
			Model:          defaultOracleModel,
			Title:          defaultOracleTitle,
			TimeoutSeconds: defaultOracleTimeoutSeconds,
			RetryAttempts:  defaultOracleRetryAttempts,
			MaxInFlight:    defaultOracleMaxInFlight,
		},
		Engine: Engine{
			Workers: defaultEngineWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
