package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	"smart-todo-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware      middleware.Middleware
	parseRatePerMin int

	taskHandler taskHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ParseRatePerMin int

	TaskHandler taskHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      middleware.New(logger),
		parseRatePerMin: cfg.ParseRatePerMin,
		taskHandler:     cfg.TaskHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
