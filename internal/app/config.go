package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Animals []string // animal names to resolve, in input order
	Age     *float64 // nil when no age was provided

	List    bool // print the species table and exit
	JSON    bool // structured records instead of the textual report
	NoColor bool // suppress ANSI color in bars

	LogFormat string
	LogLevel  string

	// TermWidth overrides terminal width detection when positive. It is not
	// exposed as a flag; tests and harnesses use it for deterministic bars.
	TermWidth int
}

// NewConfig normalizes a Config value, applying defaults for the logging
// fields when they are empty.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
