package config

const (
	defaultDataDir           = "~/.local/share/overdub"
	defaultLogDir            = "~/.local/share/overdub/logs"
	defaultEligibleThreshold = 90
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Album: Album{
			EligibleThreshold: defaultEligibleThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
