package rex

// Config controls compilation behavior.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.EnablePrefilter = false // always run the bare automaton
//	re, err := rex.CompileWithConfig(`lorem|ipsum`, config)
type Config struct {
	// ForceNFA disables the determinism dispatch: the compiled automaton
	// always uses the subset-construction executor, even when a dense
	// deterministic table would do. Acceptance is unchanged; only speed
	// differs. Intended for tests that exercise both executors.
	// Default: false
	ForceNFA bool

	// EnablePrefilter enables literal-based input pre-rejection.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of a mandatory literal factor
	// for the prefilter to use it. Shorter factors reject too little to
	// pay for the scan.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals caps the number of per-branch literals handed to the
	// multi-literal prefilter.
	// Default: 256
	MaxLiterals int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		ForceNFA:        false,
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     256,
	}
}

// Validate checks that every parameter is in range.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 1,000
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}
	if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}
