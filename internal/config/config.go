package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"github.com/GriffinCanCode/approx/internal/numerics/logexp"
	"github.com/GriffinCanCode/approx/internal/numerics/trig"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Logging   LogConfig       `toml:"logging" yaml:"logging"`
	Series    SeriesConfig    `toml:"series" yaml:"series"`
	Limits    LimitsConfig    `toml:"limits" yaml:"limits"`
	Calculus  CalculusConfig  `toml:"calculus" yaml:"calculus"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Client    ClientConfig    `toml:"client" yaml:"client"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level" envconfig:"APPROX_LOG_LEVEL"`
	Development bool   `toml:"development" yaml:"development" envconfig:"APPROX_LOG_DEV"`
}

// SeriesConfig holds series truncation settings.
type SeriesConfig struct {
	Terms        int    `toml:"terms" yaml:"terms" envconfig:"APPROX_TERMS"`
	InverseTerms int    `toml:"inverse_terms" yaml:"inverse_terms" envconfig:"APPROX_INVERSE_TERMS"`
	PiIterations int    `toml:"pi_iterations" yaml:"pi_iterations" envconfig:"APPROX_PI_ITERATIONS"`
	LogMethod    string `toml:"log_method" yaml:"log_method" envconfig:"APPROX_LOG_METHOD"`
}

// LimitsConfig holds the input ranges the console programs clamp to.
type LimitsConfig struct {
	MaxAngle        float64 `toml:"max_angle" yaml:"max_angle" envconfig:"APPROX_MAX_ANGLE"`
	MaxEndpoint     float64 `toml:"max_endpoint" yaml:"max_endpoint" envconfig:"APPROX_MAX_ENDPOINT"`
	MaxLogArgument  float64 `toml:"max_log_argument" yaml:"max_log_argument" envconfig:"APPROX_MAX_LOG_ARGUMENT"`
	MaxLogBase      float64 `toml:"max_log_base" yaml:"max_log_base" envconfig:"APPROX_MAX_LOG_BASE"`
	MaxPiIterations int     `toml:"max_pi_iterations" yaml:"max_pi_iterations" envconfig:"APPROX_MAX_PI_ITERATIONS"`
}

// CalculusConfig holds differentiation and integration settings.
type CalculusConfig struct {
	Step       float64 `toml:"step" yaml:"step" envconfig:"APPROX_STEP"`
	Partitions int     `toml:"partitions" yaml:"partitions" envconfig:"APPROX_PARTITIONS"`
	Rule       string  `toml:"rule" yaml:"rule" envconfig:"APPROX_RULE"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Precision     int    `toml:"precision" yaml:"precision" envconfig:"APPROX_PRECISION"`
	TranscriptDir string `toml:"transcript_dir" yaml:"transcript_dir" envconfig:"APPROX_TRANSCRIPT_DIR"`
	Color         bool   `toml:"color" yaml:"color" envconfig:"APPROX_COLOR"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string   `toml:"host" yaml:"host" envconfig:"APPROX_HOST"`
	Port        string   `toml:"port" yaml:"port" envconfig:"APPROX_PORT"`
	ExprTimeout Duration `toml:"expr_timeout" yaml:"expr_timeout" envconfig:"APPROX_EXPR_TIMEOUT"`
}

// Addr is host:port.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// ClientConfig holds remote tool client configuration.
type ClientConfig struct {
	BaseURL           string   `toml:"base_url" yaml:"base_url" envconfig:"APPROX_REMOTE_URL"`
	Timeout           Duration `toml:"timeout" yaml:"timeout" envconfig:"APPROX_REMOTE_TIMEOUT"`
	Retries           int      `toml:"retries" yaml:"retries" envconfig:"APPROX_REMOTE_RETRIES"`
	RequestsPerSecond float64  `toml:"requests_per_second" yaml:"requests_per_second" envconfig:"APPROX_REMOTE_RPS"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `toml:"requests_per_second" yaml:"requests_per_second" envconfig:"APPROX_RATE_LIMIT_RPS"`
	Burst             int  `toml:"burst" yaml:"burst" envconfig:"APPROX_RATE_LIMIT_BURST"`
	Enabled           bool `toml:"enabled" yaml:"enabled" envconfig:"APPROX_RATE_LIMIT_ENABLED"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level: "info",
		},
		Series: SeriesConfig{
			Terms:        trig.DefaultTerms,
			InverseTerms: trig.DefaultInverseTerms,
			LogMethod:    string(logexp.MethodBitHack),
		},
		Limits: LimitsConfig{
			MaxAngle:        20,
			MaxEndpoint:     100,
			MaxLogArgument:  10000,
			MaxLogBase:      10000,
			MaxPiIterations: 10000,
		},
		Calculus: CalculusConfig{
			Step:       calculus.DefaultStep,
			Partitions: calculus.DefaultPartitions,
			Rule:       string(calculus.Midpoint),
		},
		Output: OutputConfig{
			Precision:     100,
			TranscriptDir: ".",
			Color:         true,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        "8000",
			ExprTimeout: Duration{100 * time.Millisecond},
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8000",
			Timeout: Duration{10 * time.Second},
			Retries: 3,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

// Load layers the defaults, the optional file at path (TOML or YAML by
// extension) and APPROX_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns the
// defaults when that fails.
func LoadOrDefault() *Config {
	cfg, err := Load("")
	if err != nil {
		return Default()
	}
	return cfg
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate checks cross-field constraints that the numerics packages
// would otherwise reject at call time.
func (c *Config) Validate() error {
	if err := c.Trig().Validate(); err != nil {
		return err
	}
	if _, err := logexp.ParseMethod(c.Series.LogMethod); err != nil {
		return err
	}
	if _, err := calculus.ParseRule(c.Calculus.Rule); err != nil {
		return err
	}
	if _, err := calculus.NewDerivative(calculus.Func(func(float64) float64 { return 0 }), c.Calculus.Step); err != nil {
		return err
	}
	if c.Calculus.Partitions < 1 || c.Calculus.Partitions > calculus.MaxPartitions {
		return fmt.Errorf("calculus.partitions must be within [1, %d]", calculus.MaxPartitions)
	}
	if !(c.Limits.MaxAngle > 0) || !(c.Limits.MaxEndpoint > 0) ||
		!(c.Limits.MaxLogArgument > 0) || !(c.Limits.MaxLogBase > 1) {
		return fmt.Errorf("limits must be positive (max_log_base above 1)")
	}
	if c.Limits.MaxPiIterations < 0 || c.Limits.MaxPiIterations > trig.MaxPiIterations {
		return fmt.Errorf("limits.max_pi_iterations must be within [0, %d]", trig.MaxPiIterations)
	}
	if c.Output.Precision < -1 || c.Output.Precision > 1000 {
		return fmt.Errorf("output.precision must be within [-1, 1000]")
	}
	return nil
}

// Trig returns the series configuration for trig.New.
func (c *Config) Trig() trig.Config {
	return trig.Config{
		Terms:        c.Series.Terms,
		InverseTerms: c.Series.InverseTerms,
		PiIterations: c.Series.PiIterations,
	}
}

// Duration is a time.Duration that decodes from strings such as "250ms" in
// files and environment variables.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
