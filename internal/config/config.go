package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
	Scorer ScorerConfig `yaml:"scorer"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	DebugRaw        string        `yaml:"debug"            env:"FLASK_DEBUG"             env-default:"True"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`

	// Debug is parsed from DebugRaw during validation.
	Debug bool `yaml:"-" env:"-"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CORSConfig holds CORS settings for the /api routes.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"FRONTEND_URL"           env-default:"http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ScorerConfig holds settings for the external GP-TSM scorer.
// An empty URL means the scorer is not installed.
type ScorerConfig struct {
	URL          string        `yaml:"url"           env:"GPTSM_URL"`
	Timeout      time.Duration `yaml:"timeout"       env:"GPTSM_TIMEOUT"       env-default:"120s"`
	ProbeTimeout time.Duration `yaml:"probe_timeout" env:"GPTSM_PROBE_TIMEOUT" env-default:"5s"`
}

// Enabled reports whether a scorer URL is configured.
func (c ScorerConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// OpenAIConfig holds the credential the external scorer needs.
// The key is only ever checked for presence and forwarded; never log it.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
}

// Configured reports whether an API key is present.
func (c OpenAIConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
