package service_test

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/service"
	"github.com/Hetwork/swachhsathi-cf/internal/vision"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"

	mock_service "github.com/Hetwork/swachhsathi-cf/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassify_EmptyReference(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewClassificationService(
		mock_service.NewMockLabelDetector(ctrl),
		mock_service.NewMockGenerativeClassifier(ctrl),
		mock_service.NewMockScanStore(ctrl),
		discardLogger(),
	)

	_, err := svc.Classify(context.Background(), "   ")
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestClassify_Primary_HighSeverity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	ann := &vision.Annotation{
		Labels: []vision.Label{
			{Description: "Garbage", Score: 0.95},
			{Description: "Plastic bottle", Score: 0.90},
			{Description: "Street", Score: 0.70},
		},
		Objects: []vision.Object{
			{Name: "Bottle"}, {Name: "Bottle"}, {Name: "Bag"},
			{Name: "Bag"}, {Name: "Can"}, {Name: "Can"},
		},
	}

	labels.EXPECT().AnnotateImage(gomock.Any(), "https://img/1.jpg").Return(ann, nil).Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "https://img/1.jpg", gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, mock_service.NewMockGenerativeClassifier(ctrl), scans, discardLogger())

	got, err := svc.Classify(context.Background(), "https://img/1.jpg")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !got.IsGarbage {
		t.Fatalf("expected garbage, got %+v", got)
	}
	// "Garbage" scores above "Plastic bottle", so its category wins.
	if got.Category != domain.CategoryGarbageCollection {
		t.Fatalf("unexpected category: %s", got.Category)
	}
	// 6 objects, avg (0.95+0.90+0.70)/3 = 0.85 > 0.8
	if got.Severity != domain.SeverityHigh {
		t.Fatalf("unexpected severity: %s", got.Severity)
	}
	if got.Confidence != 0.85 {
		t.Fatalf("unexpected confidence: %v", got.Confidence)
	}
	if got.ObjectCount != 6 {
		t.Fatalf("unexpected object count: %d", got.ObjectCount)
	}
	if got.AnalyzedBy != domain.AnalyzedByPrimary {
		t.Fatalf("unexpected analyzer: %s", got.AnalyzedBy)
	}
	if !reflect.DeepEqual(got.DetectedLabels, []string{"Garbage", "Plastic bottle", "Street"}) {
		t.Fatalf("unexpected labels: %v", got.DetectedLabels)
	}
}

func TestClassify_Primary_HighestScoringLabelWinsCategory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	ann := &vision.Annotation{
		Labels: []vision.Label{
			{Description: "Plastic wrapper", Score: 0.60},
			{Description: "Open drain", Score: 0.90},
		},
		Objects: []vision.Object{{Name: "Wrapper"}},
	}

	labels.EXPECT().AnnotateImage(gomock.Any(), "ref").Return(ann, nil).Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "ref", gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, mock_service.NewMockGenerativeClassifier(ctrl), scans, discardLogger())

	got, err := svc.Classify(context.Background(), "ref")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Category != domain.CategoryDrainCleaning {
		t.Fatalf("unexpected category: %s", got.Category)
	}
	// 1 object <= 2, so severity is Low regardless of score.
	if got.Severity != domain.SeverityLow {
		t.Fatalf("unexpected severity: %s", got.Severity)
	}
}

func TestClassify_Primary_NoGarbage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	ann := &vision.Annotation{
		Labels: []vision.Label{
			{Description: "Sky", Score: 0.98},
			{Description: "Tree", Score: 0.95},
		},
		Objects: []vision.Object{{Name: "Tree"}},
	}

	labels.EXPECT().AnnotateImage(gomock.Any(), "ref").Return(ann, nil).Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "ref", gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, mock_service.NewMockGenerativeClassifier(ctrl), scans, discardLogger())

	got, err := svc.Classify(context.Background(), "ref")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IsGarbage {
		t.Fatalf("expected no garbage, got %+v", got)
	}
	if got.Category != "" || got.Severity != "" {
		t.Fatalf("category/severity must stay empty: %+v", got)
	}
	if got.Confidence != 0 {
		t.Fatalf("confidence must be 0, got %v", got.Confidence)
	}
	if got.Description != "No garbage detected in the image" {
		t.Fatalf("unexpected description: %q", got.Description)
	}
	if got.ObjectCount != 0 {
		t.Fatalf("object count must be 0 for a clean image, got %d", got.ObjectCount)
	}
}

func TestClassify_FallbackAfterPrimaryFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	generative := mock_service.NewMockGenerativeClassifier(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	ref := "data:image/jpeg;base64,AAAA"

	labels.EXPECT().AnnotateImage(gomock.Any(), ref).Return(nil, errors.New("quota exceeded")).Times(1)
	generative.EXPECT().
		Classify(gomock.Any(), "AAAA", gomock.Any()).
		Return("```json\n{\"isGarbage\":true,\"category\":\"Plastic Waste\",\"severity\":\"High\",\"description\":\"plastic pile\",\"detectedItems\":[\"bottle\",\"bag\"],\"confidence\":0.9}\n```", nil).
		Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), ref, gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, generative, scans, discardLogger())

	got, err := svc.Classify(context.Background(), ref)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := domain.ClassificationResult{
		IsGarbage:      true,
		Category:       domain.CategoryPlasticWaste,
		Severity:       domain.SeverityHigh,
		Confidence:     0.9,
		Description:    "plastic pile",
		DetectedLabels: []string{"bottle", "bag"},
		ObjectCount:    2,
		AnalyzedBy:     domain.AnalyzedByFallback,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: got=%+v want=%+v", got, want)
	}
}

func TestClassify_FallbackCoercesUnknownEnums(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	generative := mock_service.NewMockGenerativeClassifier(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	labels.EXPECT().AnnotateImage(gomock.Any(), "AAAA").Return(nil, errors.New("down")).Times(1)
	generative.EXPECT().
		Classify(gomock.Any(), "AAAA", gomock.Any()).
		Return(`{"isGarbage":true,"category":"Mystery Waste","severity":"Critical","description":"stuff"}`, nil).
		Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "AAAA", gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, generative, scans, discardLogger())

	got, err := svc.Classify(context.Background(), "AAAA")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Category != domain.DefaultCategory {
		t.Fatalf("unknown category must coerce to default, got %s", got.Category)
	}
	if got.Severity != domain.SeverityMedium {
		t.Fatalf("unknown severity must coerce to Medium, got %s", got.Severity)
	}
	if got.Confidence != 0.85 {
		t.Fatalf("missing confidence must default to 0.85, got %v", got.Confidence)
	}
	if got.DetectedLabels == nil || len(got.DetectedLabels) != 0 {
		t.Fatalf("missing detectedItems must become an empty slice, got %#v", got.DetectedLabels)
	}
}

func TestClassify_FallbackNotGarbage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	generative := mock_service.NewMockGenerativeClassifier(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	labels.EXPECT().AnnotateImage(gomock.Any(), "AAAA").Return(nil, errors.New("down")).Times(1)
	generative.EXPECT().
		Classify(gomock.Any(), "AAAA", gomock.Any()).
		Return(`{"isGarbage":false,"description":"a clean park","confidence":0.97}`, nil).
		Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "AAAA", gomock.Any()).Return(nil).Times(1)

	svc := service.NewClassificationService(labels, generative, scans, discardLogger())

	got, err := svc.Classify(context.Background(), "AAAA")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IsGarbage {
		t.Fatalf("expected no garbage")
	}
	if got.Confidence != 0 || got.Category != "" || got.Severity != "" {
		t.Fatalf("not-garbage result must carry no category/severity/confidence: %+v", got)
	}
}

func TestClassify_BothClassifiersFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	generative := mock_service.NewMockGenerativeClassifier(ctrl)

	labels.EXPECT().AnnotateImage(gomock.Any(), "AAAA").Return(nil, errors.New("down")).Times(1)
	generative.EXPECT().Classify(gomock.Any(), "AAAA", gomock.Any()).Return("", errors.New("also down")).Times(1)

	svc := service.NewClassificationService(labels, generative, mock_service.NewMockScanStore(ctrl), discardLogger())

	_, err := svc.Classify(context.Background(), "AAAA")
	if !errors.Is(err, e.ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}
}

func TestClassify_FallbackNonJSONResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	generative := mock_service.NewMockGenerativeClassifier(ctrl)

	labels.EXPECT().AnnotateImage(gomock.Any(), "AAAA").Return(nil, errors.New("down")).Times(1)
	generative.EXPECT().Classify(gomock.Any(), "AAAA", gomock.Any()).Return("I cannot help with that.", nil).Times(1)

	svc := service.NewClassificationService(labels, generative, mock_service.NewMockScanStore(ctrl), discardLogger())

	_, err := svc.Classify(context.Background(), "AAAA")
	if !errors.Is(err, e.ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}
}

func TestClassify_AuditFailureDoesNotSurface(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labels := mock_service.NewMockLabelDetector(ctrl)
	scans := mock_service.NewMockScanStore(ctrl)

	ann := &vision.Annotation{
		Labels:  []vision.Label{{Description: "Trash", Score: 0.9}},
		Objects: []vision.Object{{Name: "Bag"}},
	}
	labels.EXPECT().AnnotateImage(gomock.Any(), "ref").Return(ann, nil).Times(1)
	scans.EXPECT().SaveClassification(gomock.Any(), "ref", gomock.Any()).Return(errors.New("db down")).Times(1)

	svc := service.NewClassificationService(labels, mock_service.NewMockGenerativeClassifier(ctrl), scans, discardLogger())

	got, err := svc.Classify(context.Background(), "ref")
	if err != nil {
		t.Fatalf("audit failure must not surface: %v", err)
	}
	if !got.IsGarbage {
		t.Fatalf("unexpected result: %+v", got)
	}
}
