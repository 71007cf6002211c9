package analysisRepository

import (
	"LogoVision/internal/entity"
	"LogoVision/pkg/log"

	"google.golang.org/api/vision/v1"
)

func (r *analysisRepository) AddAnalysis(info entity.ImageInfo, data entity.AnalysisData) *entity.AnalysisRecord {
	analysis := entity.Analysis{
		Text:   entity.TextResult{Blocks: []*vision.Page{}},
		Logos:  []entity.LogoAnnotation{},
		Labels: []entity.LabelAnnotation{},
	}
	if data.Text != nil {
		analysis.Text.FullText = data.Text.FullText
		if data.Text.Blocks != nil {
			analysis.Text.Blocks = append(analysis.Text.Blocks, data.Text.Blocks...)
		}
	}
	if data.Logos != nil {
		analysis.Logos = append(analysis.Logos, data.Logos...)
	}
	if data.Labels != nil {
		analysis.Labels = append(analysis.Labels, data.Labels...)
	}

	r.mu.Lock()
	record := &entity.AnalysisRecord{
		ID:        r.nextID,
		Timestamp: r.now().UTC(),
		ImageInfo: info,
		Analysis:  analysis,
	}
	r.nextID++
	r.current = record
	r.mu.Unlock()

	r.log.WithFields(log.Fields{
		"analysis_id": record.ID,
		"image_name":  info.Name,
		"logos":       len(analysis.Logos),
		"labels":      len(analysis.Labels),
	}).Debug("Stored analysis")

	return cloneRecord(record)
}

func (r *analysisRepository) GetCurrentAnalysis() (*entity.AnalysisRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, false
	}
	return cloneRecord(r.current), true
}

func (r *analysisRepository) ClearAll() {
	r.mu.Lock()
	r.current = nil
	r.nextID = initialID
	r.mu.Unlock()

	r.log.Debug("Cleared stored analysis")
}

func (r *analysisRepository) Stats() entity.AnalysisStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := entity.AnalysisStats{TotalAnalyses: r.nextID - initialID}
	if r.current == nil {
		return stats
	}

	at := r.current.Timestamp
	stats.LastAnalysisID = r.current.ID
	stats.LogoCount = len(r.current.Analysis.Logos)
	stats.LabelCount = len(r.current.Analysis.Labels)
	stats.LastAnalyzedAt = &at
	return stats
}

func cloneRecord(src *entity.AnalysisRecord) *entity.AnalysisRecord {
	dst := *src
	dst.Analysis.Text.Blocks = append([]*vision.Page{}, src.Analysis.Text.Blocks...)
	dst.Analysis.Logos = append([]entity.LogoAnnotation{}, src.Analysis.Logos...)
	dst.Analysis.Labels = append([]entity.LabelAnnotation{}, src.Analysis.Labels...)
	return &dst
}
