package analysisService

import (
	"LogoVision/internal/api/analysis"
	"LogoVision/internal/entity"
	"LogoVision/pkg/log"
	"LogoVision/pkg/response"
	"LogoVision/pkg/vision"
	"context"
	"errors"
	"fmt"
)

func (s *analysisService) AnalyzeImage(ctx context.Context, upload analysis.ImageUpload) (*entity.AnalysisRecord, error) {
	logger := log.WithRequestID(s.log, ctx).WithFields(log.Fields{
		"image_name": upload.Name,
		"mime_type":  upload.MimeType,
		"size":       upload.Size,
	})

	logger.Debug("Requesting image annotation")

	result, err := s.vision.AnnotateImage(ctx, upload.Content)
	if err != nil {
		mapped := classifyAnnotationError(ctx, err)
		logger.WithField("error", err.Error()).Warn("Image annotation failed")
		return nil, mapped
	}

	data := normalizeAnnotation(result)
	record := s.repo.AddAnalysis(upload.Info(), data)

	logger.WithFields(log.Fields{
		"analysis_id": record.ID,
		"logos":       len(record.Analysis.Logos),
		"labels":      len(record.Analysis.Labels),
	}).Info("Image analyzed")

	return record, nil
}

func classifyAnnotationError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return analysis.ErrExternalTimeout
	}

	var annErr *vision.AnnotationError
	if !errors.As(err, &annErr) {
		return fmt.Errorf("%w: %v", analysis.ErrUnexpectedFailure, err)
	}

	switch {
	case annErr.Timeout():
		return analysis.ErrExternalTimeout
	case annErr.InvalidArgument():
		if annErr.Message != "" {
			return response.WithMessage(analysis.ErrExternalInvalidArgument, annErr.Message)
		}
		return analysis.ErrExternalInvalidArgument
	default:
		if annErr.Message != "" {
			return response.WithMessage(analysis.ErrExternalServiceFailure, annErr.Message)
		}
		return analysis.ErrExternalServiceFailure
	}
}

func (s *analysisService) GetLogos(ctx context.Context) analysis.LogoListing {
	record, ok := s.repo.GetCurrentAnalysis()
	if !ok {
		log.WithRequestID(s.log, ctx).Debug("No analysis stored, serving sample logos")
		return analysis.LogoListing{Samples: sampleLogos(s.now().UTC())}
	}

	logos := make([]analysis.LogoEntry, 0, len(record.Analysis.Logos))
	for _, logo := range record.Analysis.Logos {
		logos = append(logos, analysis.LogoEntry{
			ID:         fmt.Sprintf("%d_%s", record.ID, logo.Description),
			Name:       logo.Description,
			Confidence: logo.Score,
			Location:   logo.BoundingPoly,
			Timestamp:  record.Timestamp,
			ImageName:  record.ImageInfo.Name,
		})
	}

	stats := s.repo.Stats()
	return analysis.LogoListing{Logos: logos, Stats: &stats}
}

func (s *analysisService) GetCurrentAnalysis(ctx context.Context) (*entity.AnalysisRecord, error) {
	record, ok := s.repo.GetCurrentAnalysis()
	if !ok {
		return nil, analysis.ErrAnalysisNotFound
	}
	return record, nil
}

func (s *analysisService) ClearAnalyses(ctx context.Context) {
	s.repo.ClearAll()
	log.WithRequestID(s.log, ctx).Info("Analyses cleared")
}
