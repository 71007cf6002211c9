package analysisHandler

import (
	analysisService "LogoVision/internal/api/analysis/service"
	"LogoVision/internal/middleware"
	"LogoVision/pkg/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.IAnalysisService
	utils           utils.IUtils
	visionTimeout   time.Duration
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as analysisService.IAnalysisService,
	utils utils.IUtils,
	visionTimeout time.Duration,
) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		analysisService: as,
		utils:           utils,
		visionTimeout:   visionTimeout,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	srv.Post("/upload-image", h.UploadImage)
	srv.Get("/getlogo", h.GetLogos)

	analysis := srv.Group("/analysis")
	analysis.Get("", h.GetCurrentAnalysis)
	analysis.Delete("", h.ClearAnalyses)
}
