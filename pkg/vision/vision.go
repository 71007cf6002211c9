package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"
	"google.golang.org/grpc/codes"
)

const (
	FeatureTextDetection  = "TEXT_DETECTION"
	FeatureLogoDetection  = "LOGO_DETECTION"
	FeatureLabelDetection = "LABEL_DETECTION"
)

// Features is the fixed feature set requested for every image.
var Features = []string{FeatureTextDetection, FeatureLogoDetection, FeatureLabelDetection}

type IVision interface {
	AnnotateImage(ctx context.Context, content []byte) (*visionapi.AnnotateImageResponse, error)
}

type Config struct {
	APIKey          string
	CredentialsFile string
	Endpoint        string
}

type visionClient struct {
	service *visionapi.Service
}

func New(ctx context.Context, cfg Config, extra ...option.ClientOption) (IVision, error) {
	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	service, err := visionapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create vision service: %w", err)
	}

	return &visionClient{service: service}, nil
}

func clientOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	var opts []option.ClientOption

	switch {
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		creds, err := google.FindDefaultCredentials(ctx, visionapi.CloudVisionScope)
		if err != nil {
			return nil, fmt.Errorf("find default google credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	return opts, nil
}

func (c *visionClient) AnnotateImage(ctx context.Context, content []byte) (*visionapi.AnnotateImageResponse, error) {
	features := make([]*visionapi.Feature, 0, len(Features))
	for _, f := range Features {
		features = append(features, &visionapi.Feature{Type: f})
	}

	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{{
			Image:    &visionapi.Image{Content: base64.StdEncoding.EncodeToString(content)},
			Features: features,
		}},
	}

	resp, err := c.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fromCallError(ctx, err)
	}

	if len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return nil, &AnnotationError{Code: codes.Internal, Message: "empty annotation response"}
	}

	result := resp.Responses[0]
	if result.Error != nil && result.Error.Code != int64(codes.OK) {
		return nil, &AnnotationError{
			Code:    codes.Code(result.Error.Code),
			Message: result.Error.Message,
		}
	}

	return result, nil
}

// AnnotationError carries the canonical status of a failed annotation call.
type AnnotationError struct {
	Code    codes.Code
	Message string
	Err     error
}

func (e *AnnotationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vision %s: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("vision %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("vision %s", e.Code)
}

func (e *AnnotationError) Unwrap() error {
	return e.Err
}

// InvalidArgument reports failures caused by the submitted image itself.
func (e *AnnotationError) InvalidArgument() bool {
	return e.Code == codes.InvalidArgument || e.Code == codes.OutOfRange
}

func (e *AnnotationError) Timeout() bool {
	return e.Code == codes.DeadlineExceeded
}

func fromCallError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &AnnotationError{Code: codes.DeadlineExceeded, Err: err}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &AnnotationError{
			Code:    codeFromHTTPStatus(apiErr.Code),
			Message: apiErr.Message,
			Err:     err,
		}
	}

	return &AnnotationError{Code: codes.Unknown, Err: err}
}

func codeFromHTTPStatus(status int) codes.Code {
	switch status {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
