// Package config implements the TOML configuration for quatex.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"quatex/internal/quaternion"
)

const (
	defaultLogLevel         = "NOTICE"
	defaultModulus          = 101
	defaultMaxAttempts      = 4096
	defaultSurveyWorkers    = 8
	defaultAssistantTimeout = 30 * time.Second
	defaultAssistantModel   = "gpt-4o-mini"
	defaultAPIKeyEnv        = "QUATEX_ASSISTANT_KEY"
	defaultServerAddress    = ":8080"
	defaultMetricsPath      = "/metrics"
	defaultServerMaxTrials  = 10000
)

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl
	return nil
}

// Simulation holds the arithmetic parameters of new sessions.
type Simulation struct {
	// Modulus is the default ring modulus for new sessions.
	Modulus int64

	// MaxAttempts bounds the draws per secret in key generation. A negative
	// value removes the bound.
	MaxAttempts int

	// SurveyWorkers is the worker pool size for surveys.
	SurveyWorkers int
}

func (s *Simulation) fixup() {
	if s.Modulus == 0 {
		s.Modulus = defaultModulus
	}
	if s.MaxAttempts == 0 {
		s.MaxAttempts = defaultMaxAttempts
	}
	if s.SurveyWorkers == 0 {
		s.SurveyWorkers = defaultSurveyWorkers
	}
}

func (s *Simulation) validate() error {
	if s.Modulus < 1 || s.Modulus > quaternion.MaxModulus {
		return fmt.Errorf("config: Simulation: Modulus %d out of range [1, %d]", s.Modulus, quaternion.MaxModulus)
	}
	if s.SurveyWorkers < 1 {
		return fmt.Errorf("config: Simulation: SurveyWorkers must be positive, got %d", s.SurveyWorkers)
	}
	return nil
}

// Assistant configures the hosted chat service behind `quatex ask`.
type Assistant struct {
	// Endpoint is the chat-completions URL. Empty disables the service and
	// every answer falls back to built-in text.
	Endpoint string

	// Model is passed through to the service.
	Model string

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string

	// Timeout bounds one request.
	Timeout time.Duration
}

func (a *Assistant) fixup() {
	if a.Model == "" {
		a.Model = defaultAssistantModel
	}
	if a.APIKeyEnv == "" {
		a.APIKeyEnv = defaultAPIKeyEnv
	}
	if a.Timeout == 0 {
		a.Timeout = defaultAssistantTimeout
	}
}

// APIKey reads the key from the configured environment variable.
func (a *Assistant) APIKey() string {
	return os.Getenv(a.APIKeyEnv)
}

// Server configures quatexd.
type Server struct {
	// Address is the listen address of the simulation API.
	Address string

	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string

	// MaxTrials caps the trial count of one /survey request.
	MaxTrials int
}

func (s *Server) fixup() {
	if s.Address == "" {
		s.Address = defaultServerAddress
	}
	if s.MetricsPath == "" {
		s.MetricsPath = defaultMetricsPath
	}
	if s.MaxTrials == 0 {
		s.MaxTrials = defaultServerMaxTrials
	}
}

func (s *Server) validate() error {
	if !strings.HasPrefix(s.MetricsPath, "/") {
		return fmt.Errorf("config: Server: MetricsPath '%v' must start with /", s.MetricsPath)
	}
	if s.MaxTrials < 1 {
		return fmt.Errorf("config: Server: MaxTrials must be positive, got %d", s.MaxTrials)
	}
	return nil
}

// Config is the top level quatex configuration.
type Config struct {
	Logging    *Logging
	Simulation *Simulation
	Assistant  *Assistant
	Server     *Server
}

// Default returns a fully populated configuration.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic(err)
	}
	return cfg
}

// FixupAndValidate applies defaults to config entries and validates the
// configuration sections.
func (c *Config) FixupAndValidate() error {
	if c.Logging == nil {
		c.Logging = &Logging{}
	}
	if c.Simulation == nil {
		c.Simulation = &Simulation{}
	}
	if c.Assistant == nil {
		c.Assistant = &Assistant{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}

	c.Simulation.fixup()
	c.Assistant.fixup()
	c.Server.fixup()

	var errs []error
	if err := c.Logging.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Simulation.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Server.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)

	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file and returns the
// Config. A missing file yields the defaults.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return Load(b)
}
