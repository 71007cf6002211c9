package analysisRepository

import (
	"LogoVision/internal/entity"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const initialID int64 = 1

type IAnalysisRepository interface {
	AddAnalysis(info entity.ImageInfo, data entity.AnalysisData) *entity.AnalysisRecord
	GetCurrentAnalysis() (*entity.AnalysisRecord, bool)
	ClearAll()
	Stats() entity.AnalysisStats
}

// analysisRepository keeps only the most recent analysis. Every successful
// write replaces the slot and consumes the next id.
type analysisRepository struct {
	mu      sync.RWMutex
	current *entity.AnalysisRecord
	nextID  int64
	now     func() time.Time
	log     *logrus.Logger
}

func New(log *logrus.Logger) IAnalysisRepository {
	return NewWithClock(log, time.Now)
}

func NewWithClock(log *logrus.Logger, now func() time.Time) IAnalysisRepository {
	return &analysisRepository{
		nextID: initialID,
		now:    now,
		log:    log,
	}
}
