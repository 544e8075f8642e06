package config

const (
	defaultScanDir              = "."
	defaultLogDir               = "~/.local/share/mediaconv/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultHistoryRetentionDays = 90
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ScanDir: defaultScanDir,
			LogDir:  defaultLogDir,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultHistoryRetentionDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
