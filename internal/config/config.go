package config

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Error policies for lines that cannot be converted.
const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

// ConvertConfig holds converter run settings. None of them change the
// output format.
type ConvertConfig struct {
	OnError      string `yaml:"on_error"       env:"CONVERT_ON_ERROR"       env-default:"abort"`
	MaxLineBytes int    `yaml:"max_line_bytes" env:"CONVERT_MAX_LINE_BYTES" env-default:"1048576"`
	Progress     bool   `yaml:"progress"       env:"CONVERT_PROGRESS"       env-default:"true"`
}

// SkipBadLines reports whether unconvertible lines are skipped instead of
// stopping the run.
func (c ConvertConfig) SkipBadLines() bool {
	return c.OnError == OnErrorSkip
}
