package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/config"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// Client calls the image annotation REST endpoint (images:annotate) for
// label detection and object localization in a single request.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.VisionConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type Object struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Annotation is the normalized annotate response for one image.
type Annotation struct {
	Labels  []Label
	Objects []Object
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    imageSource `json:"image"`
	Features []feature   `json:"features"`
}

type imageSource struct {
	Source  *remoteSource `json:"source,omitempty"`
	Content string        `json:"content,omitempty"`
}

type remoteSource struct {
	ImageURI string `json:"imageUri"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		LocalizedObjectAnnotations []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"localizedObjectAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// AnnotateImage requests label and localized-object annotations for one
// image reference. URL references go by imageUri, anything else is sent as
// inline content.
func (c *Client) AnnotateImage(ctx context.Context, imageRef string) (*Annotation, error) {
	const op = "vision.AnnotateImage"

	entry := annotateEntry{
		Features: []feature{
			{Type: "LABEL_DETECTION", MaxResults: 20},
			{Type: "OBJECT_LOCALIZATION", MaxResults: 20},
		},
	}
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		entry.Image = imageSource{Source: &remoteSource{ImageURI: imageRef}}
	} else {
		entry.Image = imageSource{Content: stripDataURI(imageRef)}
	}

	body, err := json.Marshal(annotateRequest{Requests: []annotateEntry{entry}})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	url := fmt.Sprintf("%s/images:annotate?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("annotate request failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrExternalService, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("annotate non-200",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%s: %w: status %s", op, e.ErrExternalService, resp.Status)
	}

	var parsed annotateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrExternalService, err)
	}
	if len(parsed.Responses) == 0 {
		return nil, fmt.Errorf("%s: %w: empty response", op, e.ErrExternalService)
	}
	first := parsed.Responses[0]
	if first.Error != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, e.ErrExternalService, first.Error.Message)
	}

	out := &Annotation{
		Labels:  make([]Label, 0, len(first.LabelAnnotations)),
		Objects: make([]Object, 0, len(first.LocalizedObjectAnnotations)),
	}
	for _, l := range first.LabelAnnotations {
		out.Labels = append(out.Labels, Label{Description: l.Description, Score: l.Score})
	}
	for _, o := range first.LocalizedObjectAnnotations {
		out.Objects = append(out.Objects, Object{Name: o.Name, Score: o.Score})
	}

	return out, nil
}

func stripDataURI(ref string) string {
	if idx := strings.Index(ref, ";base64,"); idx >= 0 {
		return ref[idx+len(";base64,"):]
	}
	return ref
}
