package analysis

import (
	"LogoVision/pkg/response"
	"net/http"
)

var (
	ErrMissingInput            = response.NewError(http.StatusBadRequest, "No image provided. Use form-data field 'image'.")
	ErrInvalidMediaType        = response.NewError(http.StatusBadRequest, "Only image files are allowed")
	ErrPayloadTooLarge         = response.NewError(http.StatusBadRequest, "File too large. Max 5MB.")
	ErrExternalInvalidArgument = response.NewError(http.StatusBadRequest, "Invalid image")
	ErrExternalTimeout         = response.NewError(http.StatusGatewayTimeout, "Image analysis timed out")
	ErrExternalServiceFailure  = response.NewError(http.StatusInternalServerError, "Failed to analyze image")
	ErrUnexpectedFailure       = response.NewError(http.StatusInternalServerError, "Unexpected error")
	ErrAnalysisNotFound        = response.NewError(http.StatusNotFound, "No analysis available")
)
