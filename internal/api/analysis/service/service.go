package analysisService

import (
	"LogoVision/internal/api/analysis"
	analysisRepository "LogoVision/internal/api/analysis/repository"
	"LogoVision/internal/entity"
	"LogoVision/pkg/vision"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IAnalysisService interface {
	AnalyzeImage(ctx context.Context, upload analysis.ImageUpload) (*entity.AnalysisRecord, error)
	GetLogos(ctx context.Context) analysis.LogoListing
	GetCurrentAnalysis(ctx context.Context) (*entity.AnalysisRecord, error)
	ClearAnalyses(ctx context.Context)
}

type analysisService struct {
	log    *logrus.Logger
	repo   analysisRepository.IAnalysisRepository
	vision vision.IVision
	now    func() time.Time
}

func NewAnalysisService(
	log *logrus.Logger,
	repo analysisRepository.IAnalysisRepository,
	visionClient vision.IVision,
) IAnalysisService {
	return &analysisService{
		log:    log,
		repo:   repo,
		vision: visionClient,
		now:    time.Now,
	}
}
