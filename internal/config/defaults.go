package config

const (
	defaultStrategy  = "whitespace"
	defaultDelimiter = "\t"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tokenizer: Tokenizer{
			Strategy: defaultStrategy,
		},
		Output: Output{
			Delimiter: defaultDelimiter,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
