package types

import "errors"

// Config holds backend selection and session parameters for Store.Attach
// and the entry form.
type Config struct {
	Backend  string    `json:"backend" yaml:"backend" mapstructure:"backend"`
	Currency string    `json:"currency" yaml:"currency" mapstructure:"currency"`
	Log      LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// LogConfig selects the log level and destination. An empty File means the
// front end picks a destination that suits it.
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	File  string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Defaults applied by DefaultConfig and the config loader.
const (
	DefaultBackend  = BackendMemory
	DefaultCurrency = "R"
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrCurrencyEmpty  = errors.New("currency must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Backend:  DefaultBackend,
		Currency: DefaultCurrency,
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Currency == "" {
		return ErrCurrencyEmpty
	}
	return nil
}
