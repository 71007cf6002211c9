package config

import (
	analysisHandler "LogoVision/internal/api/analysis/handler"
	analysisRepository "LogoVision/internal/api/analysis/repository"
	analysisService "LogoVision/internal/api/analysis/service"
	"LogoVision/internal/middleware"
	"LogoVision/pkg/utils"
	"LogoVision/pkg/vision"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	handlers      []handler
	visionClient  vision.IVision
	analysisRepo  analysisRepository.IAnalysisRepository
	visionTimeout time.Duration
	corsOrigins   string
	port          string
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		visionTimeout: defaultVisionTimeout,
		corsOrigins:   "*",
		port:          defaultPort,
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.visionClient == nil {
		return nil, fmt.Errorf("vision client is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.analysisRepo == nil {
		server.analysisRepo = analysisRepository.New(server.log)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithVisionClient(client vision.IVision) ServerOption {
	return func(s *Server) error {
		s.visionClient = client
		return nil
	}
}

func WithAnalysisRepository(repo analysisRepository.IAnalysisRepository) ServerOption {
	return func(s *Server) error {
		s.analysisRepo = repo
		return nil
	}
}

// WithEnv applies port, timeout and CORS settings loaded by LoadEnv.
func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		if env.VisionTimeout <= 0 {
			return fmt.Errorf("vision timeout must be positive")
		}
		s.visionTimeout = env.VisionTimeout
		if env.AppPort != "" {
			s.port = env.AppPort
		}
		if env.CORSAllowOrigins != "" {
			s.corsOrigins = env.CORSAllowOrigins
		}
		return nil
	}
}

// RegisterHandler installs middleware and mounts every route on the engine.
// It must be called once, before Run.
func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(recover.New())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: s.corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	// Analysis
	analysisServices := analysisService.NewAnalysisService(s.log, s.analysisRepo, s.visionClient)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices, s.utils, s.visionTimeout)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, analysisHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Listen(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.engine.ShutdownWithTimeout(timeout)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"success": true,
			"message": "Server is Healthy!",
		})
	})
}
