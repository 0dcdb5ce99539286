package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/vision"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

const (
	messageClean        = "Area successfully cleaned! Great work."
	messageNeedsMore    = "Some improvement, but the area needs more cleaning."
	messageStillGarbage = "Still significant garbage present. Please clean the area properly."
)

type comparisonService struct {
	labels LabelDetector
	scans  ScanStore
	logger *slog.Logger
}

func NewComparisonService(labels LabelDetector, scans ScanStore, logger *slog.Logger) ComparisonService {
	return &comparisonService{labels: labels, scans: scans, logger: logger}
}

// Compare runs label detection on both images independently; there is no
// fallback here, either failure surfaces.
func (s *comparisonService) Compare(ctx context.Context, beforeRef, afterRef string) (domain.ComparisonResult, error) {
	if strings.TrimSpace(beforeRef) == "" || strings.TrimSpace(afterRef) == "" {
		return domain.ComparisonResult{}, fmt.Errorf("compare: %w: before and after references", e.ErrValidation)
	}

	before, err := s.labels.AnnotateImage(ctx, beforeRef)
	if err != nil {
		return domain.ComparisonResult{}, fmt.Errorf("compare before image: %w", err)
	}
	after, err := s.labels.AnnotateImage(ctx, afterRef)
	if err != nil {
		return domain.ComparisonResult{}, fmt.Errorf("compare after image: %w", err)
	}

	result := scoreComparison(before, after)

	if err := s.scans.SaveComparison(ctx, beforeRef, afterRef, result); err != nil {
		s.logger.Warn("scan audit write failed", slog.Any("error", err))
	}

	return result, nil
}

func scoreComparison(before, after *vision.Annotation) domain.ComparisonResult {
	beforeCount := countMatching(before.Labels, garbageKeywords)
	afterCount := countMatching(after.Labels, garbageKeywords)
	afterCleanCount := countMatching(after.Labels, cleanKeywords)

	reduction := beforeCount - afterCount
	if reduction < 0 {
		reduction = 0
	}

	bonus := 0.0
	if afterCount == 0 {
		bonus = 20
	}
	raw := float64(reduction)/math.Max(float64(beforeCount), 1)*60 +
		float64(afterCleanCount)*10 +
		bonus

	score := int(math.Round(raw))
	if score > 100 {
		score = 100
	}

	isClean := score >= 70 || (afterCount == 0 && beforeCount > 0)

	var message string
	switch {
	case isClean:
		message = messageClean
	case score >= 50:
		message = messageNeedsMore
	default:
		message = messageStillGarbage
	}

	return domain.ComparisonResult{
		IsClean:            isClean,
		CleanlinessScore:   score,
		Message:            message,
		BeforeLabels:       labelDescriptions(before.Labels, 10),
		AfterLabels:        labelDescriptions(after.Labels, 10),
		GarbageReduction:   reduction,
		BeforeGarbageCount: beforeCount,
		AfterGarbageCount:  afterCount,
	}
}

func countMatching(labels []vision.Label, keywords []string) int {
	count := 0
	for _, label := range labels {
		if containsAny(strings.ToLower(label.Description), keywords) {
			count++
		}
	}
	return count
}
