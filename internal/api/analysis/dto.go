package analysis

import (
	"LogoVision/internal/entity"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/api/vision/v1"
)

// MaxImageSize is the upload ceiling in bytes. The lte tag on ImageUpload.Size
// must stay in sync with it.
const MaxImageSize int64 = 5 * 1024 * 1024

type ImageUpload struct {
	Name     string
	MimeType string `validate:"required,startswith=image/"`
	Size     int64  `validate:"gte=0,lte=5242880"`
	Content  []byte `validate:"-"`
}

func (u ImageUpload) Info() entity.ImageInfo {
	return entity.ImageInfo{
		Name:     u.Name,
		MimeType: u.MimeType,
		Size:     u.Size,
	}
}

// UploadValidationError translates a validator failure on ImageUpload into
// the matching domain error.
func UploadValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ErrUnexpectedFailure
	}

	for _, fe := range validationErrs {
		switch fe.Field() {
		case "Size":
			return ErrPayloadTooLarge
		case "MimeType":
			return ErrInvalidMediaType
		}
	}

	return ErrUnexpectedFailure
}

type Summary struct {
	TextFound  bool `json:"textFound"`
	LogoCount  int  `json:"logoCount"`
	LabelCount int  `json:"labelCount"`
}

type UploadData struct {
	AnalysisID int64            `json:"analysisId"`
	Timestamp  time.Time        `json:"timestamp"`
	ImageInfo  entity.ImageInfo `json:"imageInfo"`
	Analysis   entity.Analysis  `json:"analysis"`
	Summary    Summary          `json:"summary"`
}

type UploadResponse struct {
	Success bool       `json:"success"`
	Data    UploadData `json:"data"`
}

func NewUploadResponse(record *entity.AnalysisRecord) UploadResponse {
	return UploadResponse{
		Success: true,
		Data: UploadData{
			AnalysisID: record.ID,
			Timestamp:  record.Timestamp,
			ImageInfo:  record.ImageInfo,
			Analysis:   record.Analysis,
			Summary: Summary{
				TextFound:  record.Analysis.Text.FullText != "",
				LogoCount:  len(record.Analysis.Logos),
				LabelCount: len(record.Analysis.Labels),
			},
		},
	}
}

type LogoEntry struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Confidence float64              `json:"confidence"`
	Location   *vision.BoundingPoly `json:"location"`
	Timestamp  time.Time            `json:"timestamp"`
	ImageName  string               `json:"imageName"`
}

// SampleLogoEntry mirrors LogoEntry for the illustrative data served while
// nothing has been analyzed; its location is a plain description.
type SampleLogoEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Confidence float64   `json:"confidence"`
	Location   string    `json:"location"`
	Timestamp  time.Time `json:"timestamp"`
	ImageName  string    `json:"imageName"`
}

// LogoListing is the result of GET /getlogo. Exactly one of Logos and
// Samples is populated.
type LogoListing struct {
	Logos   []LogoEntry
	Samples []SampleLogoEntry
	Stats   *entity.AnalysisStats
}

func (l LogoListing) IsSample() bool {
	return l.Samples != nil
}

type LogoResponse struct {
	Success bool                  `json:"success"`
	Data    any                   `json:"data"`
	Message string                `json:"message,omitempty"`
	Sample  bool                  `json:"sample,omitempty"`
	Stats   *entity.AnalysisStats `json:"stats,omitempty"`
}

type AnalysisResponse struct {
	Success bool                   `json:"success"`
	Data    *entity.AnalysisRecord `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
