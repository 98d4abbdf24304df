// Package config resolves process configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"itpf-legal-backend/generator"
	"itpf-legal-backend/logging"
	"itpf-legal-backend/storage"
)

// ErrInvalidConfig wraps every validation failure returned by Load
var ErrInvalidConfig = errors.New("invalid configuration")

// CorpusSource selects where the rulebook is loaded from
type CorpusSource string

const (
	CorpusFromStorage  CorpusSource = "storage"
	CorpusFromPostgres CorpusSource = "postgres"
)

// Generator providers
const (
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
	ProviderNone     = "none"
)

// Config is the resolved configuration of the server and CLI
type Config struct {
	Server    ServerConfig
	Corpus    CorpusConfig
	Storage   storage.StorageConfig
	Database  DatabaseConfig
	Generator GeneratorConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            string
	GinMode         string
	RateLimitRPS    float64
	RateLimitBurst  int
	CORSAllowOrigin string
}

type CorpusConfig struct {
	Source CorpusSource
	Prefix string
	Watch  bool
}

type DatabaseConfig struct {
	URL             string
	QueryLogEnabled bool
}

type GeneratorConfig struct {
	Provider        string
	DeepSeekKeys    []string
	DeepSeekBaseURL string
	DeepSeekModel   string
	GeminiAPIKey    string
	GeminiModel     string
	Timeout         time.Duration
	MaxTokens       int
	Temperature     float32
	PromptBudget    int
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type LogConfig struct {
	Level  string
	Format logging.Format
}

// LoadDotEnv loads ./.env, falling back to the project root when run from
// cmd/<binary>/. It returns the file it loaded, or "" when none was found.
func LoadDotEnv() string {
	for _, path := range []string{".env", "../../.env"} {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves configuration from the process environment
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom resolves configuration from v, which may already carry bound flags
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			GinMode:         v.GetString("GIN_MODE"),
			RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		Corpus: CorpusConfig{
			Source: CorpusSource(strings.ToLower(v.GetString("CORPUS_SOURCE"))),
			Prefix: v.GetString("CORPUS_PREFIX"),
			Watch:  v.GetBool("CORPUS_WATCH"),
		},
		Storage: storage.StorageConfig{
			Type:         storage.StorageType(strings.ToLower(v.GetString("STORAGE_TYPE"))),
			LocalPath:    v.GetString("STORAGE_LOCAL_PATH"),
			S3Bucket:     v.GetString("AWS_S3_BUCKET"),
			S3Region:     v.GetString("AWS_REGION"),
			AWSAccessKey: credential(v, "AWS_ACCESS_KEY_ID"),
			AWSSecretKey: credential(v, "AWS_SECRET_ACCESS_KEY"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Generator: GeneratorConfig{
			Provider: strings.ToLower(v.GetString("GENERATOR_PROVIDER")),
			DeepSeekKeys: generator.UsableKeys(
				v.GetString("DEEPSEEK_API_KEY"),
				v.GetString("DEEPSEEK_API_KEY_1"),
				v.GetString("DEEPSEEK_API_KEY_2"),
				v.GetString("DEEPSEEK_API_KEY_3"),
			),
			DeepSeekBaseURL: v.GetString("DEEPSEEK_BASE_URL"),
			DeepSeekModel:   v.GetString("DEEPSEEK_MODEL"),
			GeminiAPIKey:    credential(v, "GEMINI_API_KEY"),
			GeminiModel:     v.GetString("GEMINI_MODEL"),
			Timeout:         v.GetDuration("GENERATOR_TIMEOUT"),
			MaxTokens:       v.GetInt("GENERATOR_MAX_TOKENS"),
			Temperature:     float32(v.GetFloat64("GENERATOR_TEMPERATURE")),
			PromptBudget:    v.GetInt("PROMPT_TOKEN_BUDGET"),
		},
		Cache: CacheConfig{
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
			TTL:           v.GetDuration("CACHE_TTL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: logging.Format(strings.ToLower(v.GetString("LOG_FORMAT"))),
		},
	}
	cfg.Database.QueryLogEnabled = cfg.Database.URL != "" && v.GetBool("QUERY_LOG_ENABLED")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")

	v.SetDefault("CORPUS_SOURCE", string(CorpusFromStorage))
	v.SetDefault("CORPUS_PREFIX", "")
	v.SetDefault("CORPUS_WATCH", false)

	v.SetDefault("STORAGE_TYPE", string(storage.StorageTypeLocal))
	v.SetDefault("STORAGE_LOCAL_PATH", "./data")
	v.SetDefault("AWS_REGION", "us-east-1")

	v.SetDefault("QUERY_LOG_ENABLED", true)

	v.SetDefault("GENERATOR_PROVIDER", ProviderDeepSeek)
	v.SetDefault("DEEPSEEK_BASE_URL", generator.DefaultDeepSeekBaseURL)
	v.SetDefault("DEEPSEEK_MODEL", generator.DefaultDeepSeekModel)
	v.SetDefault("GEMINI_MODEL", generator.DefaultGeminiModel)
	v.SetDefault("GENERATOR_TIMEOUT", generator.DefaultTimeout)
	v.SetDefault("GENERATOR_MAX_TOKENS", 1000)
	v.SetDefault("GENERATOR_TEMPERATURE", generator.DefaultTemperature)
	v.SetDefault("PROMPT_TOKEN_BUDGET", 3000)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", 10*time.Minute)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", string(logging.FormatJSON))
}

// credential returns the value of key unless it is a template placeholder
func credential(v *viper.Viper, key string) string {
	value := strings.TrimSpace(v.GetString(key))
	if generator.IsPlaceholder(value) {
		return ""
	}
	return value
}

func (c *Config) validate() error {
	switch c.Storage.Type {
	case storage.StorageTypeLocal:
	case storage.StorageTypeS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("%w: AWS_S3_BUCKET is required for s3 storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_TYPE %q", ErrInvalidConfig, c.Storage.Type)
	}

	switch c.Corpus.Source {
	case CorpusFromStorage:
	case CorpusFromPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required when CORPUS_SOURCE is postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown CORPUS_SOURCE %q", ErrInvalidConfig, c.Corpus.Source)
	}

	switch c.Generator.Provider {
	case ProviderDeepSeek, ProviderGemini, ProviderNone:
	default:
		return fmt.Errorf("%w: unknown GENERATOR_PROVIDER %q", ErrInvalidConfig, c.Generator.Provider)
	}
	if c.Generator.MaxTokens <= 0 {
		return fmt.Errorf("%w: GENERATOR_MAX_TOKENS must be positive", ErrInvalidConfig)
	}

	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("%w: unknown LOG_FORMAT %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GeneratorAvailable reports whether the configured provider has credentials
func (c *Config) GeneratorAvailable() bool {
	switch c.Generator.Provider {
	case ProviderDeepSeek:
		return len(c.Generator.DeepSeekKeys) > 0
	case ProviderGemini:
		return c.Generator.GeminiAPIKey != ""
	}
	return false
}
