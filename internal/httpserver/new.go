package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"videxcl-srv/config"
	pkgHTTP "videxcl-srv/pkg/http"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/gemini"
	pkgRedis "videxcl-srv/pkg/redis"
	"videxcl-srv/pkg/sheets"
	"videxcl-srv/pkg/vision"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Backends
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	objectStore minio.ObjectStore
	producer    pkgKafka.IProducer

	// Upstream API clients
	sheetsClient sheets.ISheets
	visionClient vision.IVision
	adsClient    adsapi.IAdsReporting
	geminiClient gemini.IGemini
	httpClient   pkgHTTP.IClient
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Backends
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	ObjectStore minio.ObjectStore
	Producer    pkgKafka.IProducer

	// Upstream API clients
	SheetsClient sheets.ISheets
	VisionClient vision.IVision
	AdsClient    adsapi.IAdsReporting
	GeminiClient gemini.IGemini
	HTTPClient   pkgHTTP.IClient
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		objectStore: cfg.ObjectStore,
		producer:    cfg.Producer,

		sheetsClient: cfg.SheetsClient,
		visionClient: cfg.VisionClient,
		adsClient:    cfg.AdsClient,
		geminiClient: cfg.GeminiClient,
		httpClient:   cfg.HTTPClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.objectStore == nil {
		return errors.New("objectStore is required")
	}
	if srv.producer == nil {
		return errors.New("producer is required")
	}
	if srv.sheetsClient == nil {
		return errors.New("sheetsClient is required")
	}
	if srv.visionClient == nil {
		return errors.New("visionClient is required")
	}
	if srv.adsClient == nil {
		return errors.New("adsClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.httpClient == nil {
		return errors.New("httpClient is required")
	}
	return nil
}
