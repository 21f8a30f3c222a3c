package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "studypal"
	defaultDBCharset  = "utf8mb4"

	defaultDailyLimit     = 5
	defaultAITimeoutSec   = 60
	defaultQuotaBackend   = "memory"
	defaultCompletionsCap = 1000
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	DSN            string                `yaml:"dsn"` // MySQL DSN, assembled from Database if empty
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Quota          QuotaConfig           `yaml:"quota"`
	AI             AIConfig              `yaml:"ai"`
}

type DatabaseRuntimeConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// QuotaConfig controls the per-identity daily request quota.
type QuotaConfig struct {
	DailyLimit int    `yaml:"daily_limit"`
	Backend    string `yaml:"backend"` // "memory" | "redis"
}

// AIConfig lists the configured language-model providers.
type AIConfig struct {
	Providers       []AIProvider       `yaml:"providers"`
	GenerateModel   *AIModelAssignment `yaml:"generate_model,omitempty"`
	TimeoutSeconds  int                `yaml:"timeout_seconds"`
	MaxOutputTokens int                `yaml:"max_output_tokens"`
}

type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") || strings.EqualFold(strings.TrimSpace(c.Env), "dev")
}

// DSNValue returns an explicit DSN or assembles one from the structured fields.
func (d DatabaseRuntimeConfig) DSNValue() string {
	if dsn := strings.TrimSpace(d.DSN); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name, d.Charset)
}

// Load reads the YAML config at path, falling back to defaults for anything unset.
// A missing file is not an error; the defaults then apply as-is.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
		},
		Quota: QuotaConfig{
			DailyLimit: defaultDailyLimit,
			Backend:    defaultQuotaBackend,
		},
		AI: AIConfig{
			TimeoutSeconds:  defaultAITimeoutSec,
			MaxOutputTokens: defaultCompletionsCap,
		},
	}
}

func (c *AppConfig) normalize() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if c.Database.Host == "" {
		c.Database.Host = defaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.Charset == "" {
		c.Database.Charset = defaultDBCharset
	}
	if strings.TrimSpace(c.DSN) == "" {
		c.DSN = c.Database.DSNValue()
	}
	if c.Quota.DailyLimit <= 0 {
		c.Quota.DailyLimit = defaultDailyLimit
	}
	if c.Quota.Backend == "" {
		c.Quota.Backend = defaultQuotaBackend
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = defaultAITimeoutSec
	}
	if c.AI.MaxOutputTokens <= 0 {
		c.AI.MaxOutputTokens = defaultCompletionsCap
	}
}
