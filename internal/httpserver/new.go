package httpserver

import (
	"errors"
	"time"

	"api-scaffold/config"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	db *bun.DB

	// Security
	jwtManager scope.Manager
	cors       config.CORSConfig
	rateLimit  config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB *bun.DB

	JWTManager scope.Manager
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig
}

// New creates a new HTTPServer instance and maps every route.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		jwtManager:      cfg.JWTManager,
		cors:            cfg.CORS,
		rateLimit:       cfg.RateLimit,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
