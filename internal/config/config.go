package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for the decision engine server.
type Engine struct {
	// Network
	BindAddress string `yaml:"bind_address" env:"KORE_BIND_ADDRESS"`
	Port        int    `yaml:"port" env:"KORE_PORT"`

	// AI service sidecar (ML predictions and LLM queries)
	AIServiceURL   string        `yaml:"ai_service_url" env:"KORE_AI_SERVICE_URL"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"KORE_CONNECT_TIMEOUT"`
	MLTimeout      time.Duration `yaml:"ml_timeout" env:"KORE_ML_TIMEOUT"`
	LLMTimeout     time.Duration `yaml:"llm_timeout" env:"KORE_LLM_TIMEOUT"`
	LLMMinInterval time.Duration `yaml:"llm_min_interval" env:"KORE_LLM_MIN_INTERVAL"`

	// Decision tuning
	StuckThreshold int `yaml:"stuck_threshold" env:"KORE_STUCK_THRESHOLD"`
	ResupplyFloor  int `yaml:"resupply_floor" env:"KORE_RESUPPLY_FLOOR"`

	// HTTP server timeouts. WriteTimeout must cover a full LLM round
	// trip or strategic queries get cut off mid-response.
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"KORE_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"KORE_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"KORE_SHUTDOWN_TIMEOUT"`

	// Logging
	LogLevel string `yaml:"log_level" env:"KORE_LOG_LEVEL"`
	LogDir   string `yaml:"log_dir" env:"KORE_LOG_DIR"`
	Debug    bool   `yaml:"debug" env:"KORE_DEBUG"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		BindAddress:     "127.0.0.1",
		Port:            9901,
		AIServiceURL:    "http://127.0.0.1:9902",
		ConnectTimeout:  5 * time.Second,
		MLTimeout:       10 * time.Second,
		LLMTimeout:      300 * time.Second,
		LLMMinInterval:  60 * time.Second,
		StuckThreshold:  5,
		ResupplyFloor:   10,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    320 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogDir:          "logs",
	}
}

// Addr returns the host:port the HTTP server binds to.
func (e Engine) Addr() string {
	return fmt.Sprintf("%s:%d", e.BindAddress, e.Port)
}

// LoadEngine loads engine config from a YAML file, then applies KORE_*
// environment overrides on top. A missing file is not an error: the
// defaults serve as the base.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults + environment only
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}
