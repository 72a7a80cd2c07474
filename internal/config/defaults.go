package config

const (
	defaultConfigPath   = "~/.config/salient/config.toml"
	projectConfigName   = "salient.toml"
	defaultMode         = ModeParagraphWindows
	defaultTake         = 5
	defaultExcludePath  = "common.txt"
	defaultTextPath     = "test.txt"
	defaultEncoding     = "auto"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLogMaxSizeMB = 10
	defaultLogBackups   = 3
	defaultHistoryPath  = "~/.local/share/salient/history.db"
	defaultHistoryKeep  = 200
)

// Mode names accepted in [summary] mode.
const (
	ModeParagraphUnix    = "paragraph-unix"
	ModeParagraphWindows = "paragraph-windows"
	ModeSentence         = "sentence"
	ModePattern          = "pattern"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Summary: Summary{
			Mode: defaultMode,
			Take: defaultTake,
		},
		Inputs: Inputs{
			ExcludePath: defaultExcludePath,
			TextPath:    defaultTextPath,
			Encoding:    defaultEncoding,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogBackups,
		},
		History: History{
			Path: defaultHistoryPath,
			Keep: defaultHistoryKeep,
		},
	}
}
