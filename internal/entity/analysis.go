package entity

import (
	"time"

	"google.golang.org/api/vision/v1"
)

type ImageInfo struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeBytes"`
}

type TextResult struct {
	FullText string         `json:"fullText"`
	Blocks   []*vision.Page `json:"blocks"`
}

type LogoAnnotation struct {
	Description  string               `json:"description"`
	Score        float64              `json:"score"`
	BoundingPoly *vision.BoundingPoly `json:"boundingPoly"`
}

type LabelAnnotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Topicality  float64 `json:"topicality"`
}

// AnalysisData is the normalized annotation result before it is stored.
// Nil fields are defaulted by the store.
type AnalysisData struct {
	Text   *TextResult
	Logos  []LogoAnnotation
	Labels []LabelAnnotation
}

type Analysis struct {
	Text   TextResult        `json:"text"`
	Logos  []LogoAnnotation  `json:"logos"`
	Labels []LabelAnnotation `json:"labels"`
}

type AnalysisRecord struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ImageInfo ImageInfo `json:"imageInfo"`
	Analysis  Analysis  `json:"analysis"`
}

type AnalysisStats struct {
	TotalAnalyses  int64      `json:"totalAnalyses"`
	LastAnalysisID int64      `json:"lastAnalysisId,omitempty"`
	LogoCount      int        `json:"logoCount"`
	LabelCount     int        `json:"labelCount"`
	LastAnalyzedAt *time.Time `json:"lastAnalyzedAt,omitempty"`
}
