package recommender

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	uploadPath    = "/upload"
	textPath      = "/recommend-text"
	jobsPath      = "/jobs"
	healthPath    = "/health"
	userAgent     = "jobmatch-cli"
	defaultWait   = 30 * time.Second
	resumeField   = "resume"
	topKField     = "top_k"
)

// Client talks to the job recommendation backend.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, apiURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultWait
	}

	return &Client{
		ctx:    ctx,
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: userAgent,
	}
}

// UploadResume submits a resume file and returns the ranked recommendation.
// The file contents are streamed as a multipart field named "resume"; top_k
// travels as a string-encoded form field.
func (c *Client) UploadResume(name string, contents io.Reader, topK int) (*Recommendation, error) {
	fields := map[string]string{
		topKField: strconv.Itoa(topK),
	}

	var rec Recommendation
	if err := c.postMultipart(c.APIURL+uploadPath, fields, resumeField, name, contents, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// RecommendText submits a free-text skills description.
func (c *Client) RecommendText(text string, topK int) (*Recommendation, error) {
	payload := map[string]any{
		"text":  text,
		"top_k": topK,
	}

	var rec Recommendation
	if err := c.postJSON(c.APIURL+textPath, payload, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// GetHealth reports backend readiness and the loaded model name.
func (c *Client) GetHealth() (*Health, error) {
	var health Health
	if err := c.getJSON(c.APIURL+healthPath, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
