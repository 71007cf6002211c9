package analysisHandler

import (
	"LogoVision/internal/api/analysis"
	contextPkg "LogoVision/pkg/context"
	"LogoVision/pkg/handlerUtil"
	"LogoVision/pkg/log"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	sampleDataMessage = "No analyzed images yet. Returning sample data."
	noLogosMessage    = "No logos detected in the latest analysis."
)

func (h *AnalysisHandler) UploadImage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	file, err := ctx.FormFile("image")
	if err != nil || file == nil {
		return errHandler.Handle(ctx, requestID, analysis.ErrMissingInput, ctx.Path(), "read_form_file")
	}

	upload := analysis.ImageUpload{
		Name:     file.Filename,
		MimeType: file.Header.Get(fiber.HeaderContentType),
		Size:     file.Size,
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"file_name":  upload.Name,
		"file_size":  upload.Size,
		"mime_type":  upload.MimeType,
	}).Debug("Processing image upload")

	if err := h.validator.Struct(upload); err != nil {
		return errHandler.Handle(ctx, requestID, analysis.UploadValidationError(err), ctx.Path(), "validate_image_file")
	}

	upload.Content, err = h.utils.ReadFile(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, fmt.Errorf("%w: %v", analysis.ErrUnexpectedFailure, err), ctx.Path(), "read_file")
	}

	// the bound covers only the annotation call, not local form parsing
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.visionTimeout)
	defer cancel()

	start := time.Now()
	record, err := h.analysisService.AnalyzeImage(c, upload)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_image")
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"path":        ctx.Path(),
		"analysis_id": record.ID,
		"latency_ms":  time.Since(start).Milliseconds(),
	}).Info("Image upload analyzed")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, analysis.NewUploadResponse(record))
}

func (h *AnalysisHandler) GetLogos(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	listing := h.analysisService.GetLogos(contextPkg.FromFiberCtx(ctx))
	if listing.IsSample() {
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, analysis.LogoResponse{
			Success: true,
			Data:    listing.Samples,
			Message: sampleDataMessage,
			Sample:  true,
		})
	}

	resp := analysis.LogoResponse{
		Success: true,
		Data:    listing.Logos,
		Stats:   listing.Stats,
	}
	if len(listing.Logos) == 0 {
		resp.Message = noLogosMessage
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AnalysisHandler) GetCurrentAnalysis(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	record, err := h.analysisService.GetCurrentAnalysis(contextPkg.FromFiberCtx(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_analysis")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, analysis.AnalysisResponse{
		Success: true,
		Data:    record,
	})
}

func (h *AnalysisHandler) ClearAnalyses(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	h.analysisService.ClearAnalyses(contextPkg.FromFiberCtx(ctx))

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, analysis.MessageResponse{
		Success: true,
		Message: "All analyses cleared",
	})
}
