package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	itemRepo "inventory-management/internal/item/repository"
	"inventory-management/internal/middleware"
	userRepo "inventory-management/internal/user/repository"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Access control
	jwtManager scope.Manager
	mwConfig   middleware.Config

	// Storage
	itemRepo itemRepo.Repository
	userRepo userRepo.Repository
	ready    func(ctx context.Context) error

	// Observability
	registry *prometheus.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Access control
	JWTManager scope.Manager
	Middleware middleware.Config

	// Storage
	ItemRepository itemRepo.Repository
	UserRepository userRepo.Repository
	// ReadyCheck reports whether the backing store is reachable. Optional.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		jwtManager:  cfg.JWTManager,
		mwConfig:    cfg.Middleware,
		itemRepo:    cfg.ItemRepository,
		userRepo:    cfg.UserRepository,
		ready:       cfg.ReadyCheck,
		registry:    prometheus.NewRegistry(),
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
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	if srv.userRepo == nil {
		return errors.New("user repository is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
