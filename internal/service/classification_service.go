package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/vision"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

const noGarbageDescription = "No garbage detected in the image"

type classificationService struct {
	labels     LabelDetector
	generative GenerativeClassifier
	scans      ScanStore
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClassificationService(
	labels LabelDetector,
	generative GenerativeClassifier,
	scans ScanStore,
	logger *slog.Logger,
) ClassificationService {
	return &classificationService{
		labels:     labels,
		generative: generative,
		scans:      scans,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (s *classificationService) Classify(ctx context.Context, imageRef string) (domain.ClassificationResult, error) {
	if strings.TrimSpace(imageRef) == "" {
		return domain.ClassificationResult{}, fmt.Errorf("classify: %w: image reference", e.ErrValidation)
	}

	result, err := s.classifyPrimary(ctx, imageRef)
	if err != nil {
		// Fallback only fires when the primary call itself failed;
		// "no garbage detected" is a normal primary outcome.
		s.logger.Warn("primary classifier failed, trying fallback", slog.Any("error", err))

		result, err = s.classifyFallback(ctx, imageRef)
		if err != nil {
			s.logger.Error("fallback classifier failed", slog.Any("error", err))
			return domain.ClassificationResult{}, fmt.Errorf("classify: %w", e.ErrClassification)
		}
	}

	if err := s.scans.SaveClassification(ctx, imageRef, result); err != nil {
		s.logger.Warn("scan audit write failed", slog.Any("error", err))
	}

	return result, nil
}

func (s *classificationService) classifyPrimary(ctx context.Context, imageRef string) (domain.ClassificationResult, error) {
	ann, err := s.labels.AnnotateImage(ctx, imageRef)
	if err != nil {
		return domain.ClassificationResult{}, err
	}
	return classifyAnnotation(ann), nil
}

// classifyAnnotation normalizes a label/object annotation into a result.
// The winning category belongs to the single highest-scoring matching label;
// strict-greater comparison keeps the first maximum, so label order is the
// tie-break.
func classifyAnnotation(ann *vision.Annotation) domain.ClassificationResult {
	matched := false
	bestScore := -1.0
	var bestCategory domain.Category

	for _, label := range ann.Labels {
		text := strings.ToLower(label.Description)
		category, ok := matchCategory(text)
		if !ok {
			continue
		}
		matched = true
		if label.Score > bestScore {
			bestScore = label.Score
			bestCategory = category
		}
	}

	if !matched {
		return domain.ClassificationResult{
			IsGarbage:      false,
			Confidence:     0,
			Description:    noGarbageDescription,
			DetectedLabels: labelDescriptions(ann.Labels, 5),
			ObjectCount:    0,
			AnalyzedBy:     domain.AnalyzedByPrimary,
		}
	}

	objectCount := len(ann.Objects)

	var sum float64
	for _, label := range ann.Labels {
		sum += label.Score
	}
	avg := 0.0
	if len(ann.Labels) > 0 {
		avg = sum / float64(len(ann.Labels))
	}

	var severity domain.Severity
	switch {
	case objectCount > 5 && avg > 0.8:
		severity = domain.SeverityHigh
	case objectCount <= 2 || avg < 0.5:
		severity = domain.SeverityLow
	default:
		severity = domain.SeverityMedium
	}

	top := labelDescriptions(ann.Labels, 3)
	description := fmt.Sprintf("Detected: %s (%d objects identified)", strings.Join(top, ", "), objectCount)

	return domain.ClassificationResult{
		IsGarbage:      true,
		Category:       bestCategory,
		Severity:       severity,
		Confidence:     math.Round(avg*100) / 100,
		Description:    description,
		DetectedLabels: labelDescriptions(ann.Labels, 5),
		ObjectCount:    objectCount,
		AnalyzedBy:     domain.AnalyzedByPrimary,
	}
}

type fallbackPayload struct {
	IsGarbage     bool     `json:"isGarbage"`
	Category      string   `json:"category"`
	Severity      string   `json:"severity"`
	Description   string   `json:"description"`
	DetectedItems []string `json:"detectedItems"`
	Confidence    *float64 `json:"confidence"`
}

func (s *classificationService) classifyFallback(ctx context.Context, imageRef string) (domain.ClassificationResult, error) {
	imageB64, err := s.imageAsBase64(ctx, imageRef)
	if err != nil {
		return domain.ClassificationResult{}, err
	}

	text, err := s.generative.Classify(ctx, imageB64, fallbackPrompt())
	if err != nil {
		return domain.ClassificationResult{}, err
	}

	raw, ok := extractJSONObject(stripCodeFence(text))
	if !ok {
		return domain.ClassificationResult{}, fmt.Errorf("fallback: %w: no JSON object in response", e.ErrExternalService)
	}

	var payload fallbackPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("fallback: %w: %w", e.ErrExternalService, err)
	}

	return normalizeFallback(payload), nil
}

// normalizeFallback coerces a generative payload onto the closed enums.
func normalizeFallback(p fallbackPayload) domain.ClassificationResult {
	result := domain.ClassificationResult{
		IsGarbage:      p.IsGarbage,
		Description:    p.Description,
		DetectedLabels: p.DetectedItems,
		ObjectCount:    len(p.DetectedItems),
		AnalyzedBy:     domain.AnalyzedByFallback,
	}
	if result.DetectedLabels == nil {
		result.DetectedLabels = []string{}
	}

	if !p.IsGarbage {
		// the invariant wins over whatever the model volunteered
		result.Confidence = 0
		return result
	}

	category, ok := domain.ParseCategory(p.Category)
	if !ok {
		category = domain.DefaultCategory
	}
	result.Category = category

	switch domain.Severity(p.Severity) {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
		result.Severity = domain.Severity(p.Severity)
	default:
		result.Severity = domain.SeverityMedium
	}

	if p.Confidence != nil {
		result.Confidence = *p.Confidence
	} else {
		result.Confidence = 0.85
	}

	return result
}

// imageAsBase64 resolves the three accepted reference shapes: a fetchable
// URL, a data URI with an inline base64 payload, or an already-encoded blob.
func (s *classificationService) imageAsBase64(ctx context.Context, imageRef string) (string, error) {
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageRef, nil)
		if err != nil {
			return "", e.Wrap("fetch image", err)
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch image: %w: %w", e.ErrExternalService, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch image: %w: status %s", e.ErrExternalService, resp.Status)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("fetch image: %w: %w", e.ErrExternalService, err)
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	}

	if idx := strings.Index(imageRef, ";base64,"); idx >= 0 {
		return imageRef[idx+len(";base64,"):], nil
	}

	return imageRef, nil
}

func fallbackPrompt() string {
	var b strings.Builder
	b.WriteString("Analyze this image for garbage or waste. Respond with a strict JSON object only, ")
	b.WriteString(`with keys: isGarbage (boolean), category (string), severity (string), `)
	b.WriteString(`description (string), detectedItems (array of strings), confidence (number 0-1).`)
	b.WriteString("\ncategory must be exactly one of: ")
	for i, c := range domain.AllCategories {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
	}
	b.WriteString(".\nseverity rules: High when many objects (>5) with high confidence, ")
	b.WriteString("Low when very few objects (<=2) or low confidence, Medium otherwise. ")
	b.WriteString("If the image shows no garbage, set isGarbage to false and category to null.")
	return b.String()
}

func labelDescriptions(labels []vision.Label, max int) []string {
	out := make([]string, 0, max)
	for _, label := range labels {
		if len(out) == max {
			break
		}
		out = append(out, label.Description)
	}
	return out
}
