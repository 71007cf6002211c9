package analysisService

import (
	"LogoVision/internal/api/analysis"
	"LogoVision/internal/entity"
	"time"

	"google.golang.org/api/vision/v1"
)

// normalizeAnnotation maps the annotation response field by field. Absent
// annotations become empty collections.
func normalizeAnnotation(res *vision.AnnotateImageResponse) entity.AnalysisData {
	data := entity.AnalysisData{
		Text:   &entity.TextResult{Blocks: []*vision.Page{}},
		Logos:  []entity.LogoAnnotation{},
		Labels: []entity.LabelAnnotation{},
	}
	if res == nil {
		return data
	}

	data.Text.FullText = fullText(res)
	if res.FullTextAnnotation != nil && res.FullTextAnnotation.Pages != nil {
		data.Text.Blocks = res.FullTextAnnotation.Pages
	}

	for _, l := range res.LogoAnnotations {
		if l == nil {
			continue
		}
		data.Logos = append(data.Logos, entity.LogoAnnotation{
			Description:  l.Description,
			Score:        l.Score,
			BoundingPoly: l.BoundingPoly,
		})
	}

	for _, l := range res.LabelAnnotations {
		if l == nil {
			continue
		}
		data.Labels = append(data.Labels, entity.LabelAnnotation{
			Description: l.Description,
			Score:       l.Score,
			Topicality:  l.Topicality,
		})
	}

	return data
}

// fullText prefers the dense text annotation and falls back to the first
// entity, which holds the whole detected text.
func fullText(res *vision.AnnotateImageResponse) string {
	if res.FullTextAnnotation != nil && res.FullTextAnnotation.Text != "" {
		return res.FullTextAnnotation.Text
	}
	if len(res.TextAnnotations) > 0 && res.TextAnnotations[0] != nil {
		return res.TextAnnotations[0].Description
	}
	return ""
}

func sampleLogos(now time.Time) []analysis.SampleLogoEntry {
	return []analysis.SampleLogoEntry{
		{ID: "sample_1", Name: "logo1", Confidence: 0.92, Location: "Shirt", Timestamp: now, ImageName: "sample.jpg"},
		{ID: "sample_2", Name: "logo2", Confidence: 0.85, Location: "Board", Timestamp: now, ImageName: "sample.jpg"},
		{ID: "sample_3", Name: "logo3", Confidence: 0.78, Location: "Ball", Timestamp: now, ImageName: "sample.jpg"},
	}
}
