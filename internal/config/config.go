package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Appraisal AppraisalConfig `mapstructure:"appraisal"`
	SNS       SNSConfig       `mapstructure:"sns"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// DatabaseConfig selects the history store. Driver is "sqlite" or "postgres".
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN builds the connection string for the configured driver. A non-empty URL
// wins for postgres.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	return c.Path
}

// StorageConfig configures S3-compatible storage for exported cards.
type StorageConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Type      string `mapstructure:"type"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
	Prefix    string `mapstructure:"prefix"`
}

type AppraisalConfig struct {
	BatchWorkers   int  `mapstructure:"batch_workers"`
	MaxBatchSize   int  `mapstructure:"max_batch_size"`
	HistoryEnabled bool `mapstructure:"history_enabled"`
}

// SNSConfig points at an SNS SDK proxy used for owner lookups.
type SNSConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from configPath (or configs/config.yaml, ./config.yaml),
// then environment variables. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Secrets and deployment endpoints
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("database.password", "DATABASE_PASSWORD")
	_ = v.BindEnv("storage.endpoint", "S3_ENDPOINT")
	_ = v.BindEnv("storage.access_key", "S3_ACCESS_KEY")
	_ = v.BindEnv("storage.secret_key", "S3_SECRET_KEY")
	_ = v.BindEnv("storage.bucket", "S3_BUCKET")
	_ = v.BindEnv("storage.public_url", "S3_PUBLIC_URL")
	_ = v.BindEnv("sns.base_url", "SNS_BASE_URL")
	_ = v.BindEnv("server.port", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/retailstar.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.bucket", "retailstar-cards")
	v.SetDefault("storage.prefix", "cards")

	v.SetDefault("appraisal.batch_workers", 4)
	v.SetDefault("appraisal.max_batch_size", 100)
	v.SetDefault("appraisal.history_enabled", true)

	v.SetDefault("sns.enabled", true)
	v.SetDefault("sns.base_url", "https://sns-sdk-proxy.bonfida.workers.dev")
	v.SetDefault("sns.timeout", "10s")
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Appraisal.BatchWorkers <= 0 {
		return fmt.Errorf("appraisal.batch_workers must be positive, got %d", c.Appraisal.BatchWorkers)
	}
	if c.Appraisal.MaxBatchSize <= 0 {
		return fmt.Errorf("appraisal.max_batch_size must be positive, got %d", c.Appraisal.MaxBatchSize)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return errors.New("storage.bucket is required when storage is enabled")
	}
	return nil
}
