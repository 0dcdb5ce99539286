package domain

const (
	AnalyzedByPrimary  = "primary"
	AnalyzedByFallback = "fallback"
)

// ClassificationResult is the normalized output of either classifier.
// Invariant: IsGarbage=false implies Category and Severity empty and
// Confidence 0.
type ClassificationResult struct {
	IsGarbage      bool     `json:"is_garbage"`
	Category       Category `json:"category,omitempty"`
	Severity       Severity `json:"severity,omitempty"`
	Confidence     float64  `json:"confidence"`
	Description    string   `json:"description"`
	DetectedLabels []string `json:"detected_labels"`
	ObjectCount    int      `json:"object_count"`
	AnalyzedBy     string   `json:"analyzed_by"`
}

// ComparisonResult scores the cleanliness delta between a before/after pair.
type ComparisonResult struct {
	IsClean            bool     `json:"is_clean"`
	CleanlinessScore   int      `json:"cleanliness_score"`
	Message            string   `json:"message"`
	BeforeLabels       []string `json:"before_labels"`
	AfterLabels        []string `json:"after_labels"`
	GarbageReduction   int      `json:"garbage_reduction"`
	BeforeGarbageCount int      `json:"before_garbage_count"`
	AfterGarbageCount  int      `json:"after_garbage_count"`
}
