package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Placements, metadata, annotations, matches
	Postgres PostgresConfig

	// Redis - Enrichment claims, caching
	Redis RedisConfig

	// MinIO - Report batches and thumbnail cropouts
	MinIO MinIOConfig

	// Kafka - Pipeline event bus
	Kafka KafkaConfig

	// External APIs
	Sheets SheetsConfig
	AdsAPI AdsAPIConfig
	YTAPI  YTAPIConfig
	Vision VisionConfig
	Gemini GeminiConfig

	// Pipeline tuning
	Pipeline PipelineConfig

	// Internal service authentication
	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	GroupID string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	Region         string
	DataBucket     string
	CropoutsBucket string
}

// SheetsConfig is the configuration for the spreadsheet API client.
type SheetsConfig struct {
	BaseURL       string
	APIKey        string
	AccountsRange string
	KeywordsRange string
}

// AdsAPIConfig is the configuration for the ads reporting API client.
type AdsAPIConfig struct {
	BaseURL        string
	DeveloperToken string
	LookbackDays   int
	// Filters are metric conditions applied to placement report queries,
	// e.g. "metrics.impressions > 0".
	Filters []string
}

// YTAPIConfig is the configuration for the video content API client.
type YTAPIConfig struct {
	BaseURL string
	APIKey  string
}

// VisionConfig is the configuration for the image annotation API client.
type VisionConfig struct {
	BaseURL string
	APIKey  string
}

// GeminiConfig is the configuration for the generative model API client.
type GeminiConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// PipelineConfig tunes pipeline concurrency and thumbnail processing.
type PipelineConfig struct {
	// WorkerLimit bounds concurrent units within a batch stage.
	WorkerLimit int
	// DispatchLimit bounds how many videos a single dispatch run fans out.
	DispatchLimit int
	// CropObjects enables writing cropped object images to storage.
	CropObjects bool
	// CropMinConfidence is the minimum annotation confidence for cropping.
	CropMinConfidence float64
	// EnrichClaimTTL is the lifetime in seconds of an enrichment claim.
	EnrichClaimTTL int
	// AgeBatchSize is how many videos one age evaluation unit carries.
	AgeBatchSize int
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Optional; leave empty to disable.
	InternalKey string
	ServiceKeys map[string]string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("videxcl-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/videxcl/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.DataBucket = viper.GetString("minio.data_bucket")
	cfg.MinIO.CropoutsBucket = viper.GetString("minio.cropouts_bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Sheets
	cfg.Sheets.BaseURL = viper.GetString("sheets.base_url")
	cfg.Sheets.APIKey = viper.GetString("sheets.api_key")
	cfg.Sheets.AccountsRange = viper.GetString("sheets.accounts_range")
	cfg.Sheets.KeywordsRange = viper.GetString("sheets.keywords_range")

	// Ads reporting API
	cfg.AdsAPI.BaseURL = viper.GetString("adsapi.base_url")
	cfg.AdsAPI.DeveloperToken = viper.GetString("adsapi.developer_token")
	cfg.AdsAPI.LookbackDays = viper.GetInt("adsapi.lookback_days")
	cfg.AdsAPI.Filters = viper.GetStringSlice("adsapi.filters")

	// Video content API
	cfg.YTAPI.BaseURL = viper.GetString("ytapi.base_url")
	cfg.YTAPI.APIKey = viper.GetString("ytapi.api_key")

	// Image annotation API
	cfg.Vision.BaseURL = viper.GetString("vision.base_url")
	cfg.Vision.APIKey = viper.GetString("vision.api_key")

	// Generative model API
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// Pipeline tuning
	cfg.Pipeline.WorkerLimit = viper.GetInt("pipeline.worker_limit")
	cfg.Pipeline.DispatchLimit = viper.GetInt("pipeline.dispatch_limit")
	cfg.Pipeline.CropObjects = viper.GetBool("pipeline.crop_objects")
	cfg.Pipeline.CropMinConfidence = viper.GetFloat64("pipeline.crop_min_confidence")
	cfg.Pipeline.EnrichClaimTTL = viper.GetInt("pipeline.enrich_claim_ttl")
	cfg.Pipeline.AgeBatchSize = viper.GetInt("pipeline.age_batch_size")

	// Internal auth key and service keys
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		serviceKeysRaw := viper.GetStringMapString("internal.service_keys")
		for service, key := range serviceKeysRaw {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "videxcl")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.data_bucket", "videxcl-data")
	viper.SetDefault("minio.cropouts_bucket", "videxcl-cropouts")

	// 4. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.group_id", "videxcl-pipeline")

	// 5. Sheets
	viper.SetDefault("sheets.base_url", "https://sheets.googleapis.com")
	viper.SetDefault("sheets.accounts_range", "Accounts!A2:B")
	viper.SetDefault("sheets.keywords_range", "Keywords!A2:A")

	// 6. Ads reporting API
	viper.SetDefault("adsapi.lookback_days", 7)
	viper.SetDefault("adsapi.filters", []string{"metrics.impressions > 0"})

	// 7. Video content API
	viper.SetDefault("ytapi.base_url", "https://www.googleapis.com/youtube")

	// 8. Image annotation API
	viper.SetDefault("vision.base_url", "https://vision.googleapis.com")

	// 9. Generative model API
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	// Pipeline
	viper.SetDefault("pipeline.worker_limit", 8)
	viper.SetDefault("pipeline.dispatch_limit", 500)
	viper.SetDefault("pipeline.crop_objects", false)
	viper.SetDefault("pipeline.crop_min_confidence", 0.7)
	viper.SetDefault("pipeline.enrich_claim_ttl", 3600)
	viper.SetDefault("pipeline.age_batch_size", 5)
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.DataBucket == "" {
		return fmt.Errorf("minio.data_bucket is required")
	}
	if cfg.MinIO.CropoutsBucket == "" {
		return fmt.Errorf("minio.cropouts_bucket is required")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required")
	}

	if cfg.Sheets.BaseURL == "" {
		return fmt.Errorf("sheets.base_url is required")
	}
	if cfg.AdsAPI.BaseURL == "" {
		return fmt.Errorf("adsapi.base_url is required")
	}
	if cfg.YTAPI.BaseURL == "" {
		return fmt.Errorf("ytapi.base_url is required")
	}
	if cfg.Vision.BaseURL == "" {
		return fmt.Errorf("vision.base_url is required")
	}
	if cfg.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini.base_url is required")
	}

	if cfg.AdsAPI.LookbackDays <= 0 {
		return fmt.Errorf("adsapi.lookback_days must be greater than 0")
	}
	if cfg.Pipeline.WorkerLimit <= 0 {
		return fmt.Errorf("pipeline.worker_limit must be greater than 0")
	}

	return nil
}
