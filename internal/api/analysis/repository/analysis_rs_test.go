package analysisRepository

import (
	"LogoVision/internal/entity"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestRepository() IAnalysisRepository {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return NewWithClock(logger, func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
}

func TestAddAnalysisStoresImageInfo(t *testing.T) {
	repo := newTestRepository()
	info := entity.ImageInfo{Name: "shirt.png", MimeType: "image/png", Size: 2048}

	repo.AddAnalysis(info, entity.AnalysisData{})

	got, ok := repo.GetCurrentAnalysis()
	if !ok {
		t.Fatal("Expected a stored analysis")
	}
	if got.ImageInfo != info {
		t.Errorf("Expected image info %+v, got %+v", info, got.ImageInfo)
	}
	if got.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestAddAnalysisDefaultsMissingFields(t *testing.T) {
	repo := newTestRepository()

	record := repo.AddAnalysis(entity.ImageInfo{Name: "a.jpg"}, entity.AnalysisData{})

	if record.Analysis.Text.Blocks == nil {
		t.Error("Expected empty text blocks, got nil")
	}
	if record.Analysis.Text.FullText != "" {
		t.Errorf("Expected empty full text, got %q", record.Analysis.Text.FullText)
	}
	if record.Analysis.Logos == nil {
		t.Error("Expected empty logos, got nil")
	}
	if record.Analysis.Labels == nil {
		t.Error("Expected empty labels, got nil")
	}
}

func TestAddAnalysisOverwrites(t *testing.T) {
	repo := newTestRepository()

	first := repo.AddAnalysis(entity.ImageInfo{Name: "first.png"}, entity.AnalysisData{
		Logos: []entity.LogoAnnotation{{Description: "Old", Score: 0.5}},
	})
	second := repo.AddAnalysis(entity.ImageInfo{Name: "second.png"}, entity.AnalysisData{})

	got, ok := repo.GetCurrentAnalysis()
	if !ok {
		t.Fatal("Expected a stored analysis")
	}
	if got.ID != second.ID || got.ImageInfo.Name != "second.png" {
		t.Errorf("Expected second record, got %+v", got)
	}
	if got.ID == first.ID {
		t.Error("First record should have been replaced")
	}
	if len(got.Analysis.Logos) != 0 {
		t.Errorf("Expected logos of the second record only, got %d", len(got.Analysis.Logos))
	}
}

func TestIDsIncreaseAndClearResets(t *testing.T) {
	repo := newTestRepository()

	for want := int64(1); want <= 3; want++ {
		record := repo.AddAnalysis(entity.ImageInfo{}, entity.AnalysisData{})
		if record.ID != want {
			t.Fatalf("Expected id %d, got %d", want, record.ID)
		}
	}

	repo.ClearAll()
	repo.ClearAll()

	if _, ok := repo.GetCurrentAnalysis(); ok {
		t.Error("Expected empty store after ClearAll")
	}
	if stats := repo.Stats(); stats.TotalAnalyses != 0 {
		t.Errorf("Expected 0 total analyses after clear, got %d", stats.TotalAnalyses)
	}

	record := repo.AddAnalysis(entity.ImageInfo{}, entity.AnalysisData{})
	if record.ID != 1 {
		t.Errorf("Expected id to reset to 1, got %d", record.ID)
	}
}

func TestGetCurrentAnalysisReturnsCopy(t *testing.T) {
	repo := newTestRepository()
	repo.AddAnalysis(entity.ImageInfo{Name: "logo.png"}, entity.AnalysisData{
		Logos: []entity.LogoAnnotation{{Description: "Acme", Score: 0.9}},
	})

	got, _ := repo.GetCurrentAnalysis()
	got.ImageInfo.Name = "mutated"
	got.Analysis.Logos[0].Description = "mutated"

	again, _ := repo.GetCurrentAnalysis()
	if again.ImageInfo.Name != "logo.png" || again.Analysis.Logos[0].Description != "Acme" {
		t.Errorf("Stored record was mutated through a read: %+v", again)
	}
}

func TestStats(t *testing.T) {
	repo := newTestRepository()

	empty := repo.Stats()
	if empty.TotalAnalyses != 0 || empty.LastAnalyzedAt != nil {
		t.Errorf("Unexpected stats for empty store: %+v", empty)
	}

	repo.AddAnalysis(entity.ImageInfo{}, entity.AnalysisData{})
	record := repo.AddAnalysis(entity.ImageInfo{}, entity.AnalysisData{
		Logos:  []entity.LogoAnnotation{{Description: "A"}, {Description: "B"}},
		Labels: []entity.LabelAnnotation{{Description: "Sport"}},
	})

	stats := repo.Stats()
	if stats.TotalAnalyses != 2 {
		t.Errorf("Expected 2 total analyses, got %d", stats.TotalAnalyses)
	}
	if stats.LastAnalysisID != record.ID {
		t.Errorf("Expected last id %d, got %d", record.ID, stats.LastAnalysisID)
	}
	if stats.LogoCount != 2 || stats.LabelCount != 1 {
		t.Errorf("Expected 2 logos and 1 label, got %d and %d", stats.LogoCount, stats.LabelCount)
	}
	if stats.LastAnalyzedAt == nil || !stats.LastAnalyzedAt.Equal(record.Timestamp) {
		t.Errorf("Expected last analyzed at %v, got %v", record.Timestamp, stats.LastAnalyzedAt)
	}
}

func TestConcurrentAddAnalysisAssignsUniqueIDs(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	repo := New(logger)

	const writers = 50
	ids := make(chan int64, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.AddAnalysis(entity.ImageInfo{}, entity.AnalysisData{}).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, writers)
	for id := range ids {
		if seen[id] {
			t.Fatalf("Duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != writers {
		t.Errorf("Expected %d ids, got %d", writers, len(seen))
	}
	if got := repo.Stats().TotalAnalyses; got != writers {
		t.Errorf("Expected %d total analyses, got %d", writers, got)
	}
}
