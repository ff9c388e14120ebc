package nlp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
)

const spacyBackend = "spacy"

// SpacyClient talks to a remote spaCy-style analysis service.
//
//	POST {base}/analyze  {"text": "..."}
//	  -> {"ents":[{"text","label"}], "tokens":[{"text","dep"}], "sents":[{"text"}]}
//	GET  {base}/health   -> 2xx once the model is loaded
type SpacyClient struct {
	client *resty.Client
	logger *zap.Logger
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// NewSpacyClient creates a client for the service at baseURL
func NewSpacyClient(baseURL string, timeout time.Duration, logger *zap.Logger) *SpacyClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &SpacyClient{client: client, logger: logger}
}

// Analyze sends text to the remote service and decodes its analysis.
// An unreachable service or a 503 reply is reported as
// errors.ErrAnalyzerUnavailable.
func (c *SpacyClient) Analyze(ctx context.Context, text string) (*AnalyzedText, error) {
	var result AnalyzedText

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(analyzeRequest{Text: text}).
		SetResult(&result).
		ForceContentType("application/json").
		Post("/analyze")
	if err != nil {
		return nil, errors.ErrAnalyzerUnavailable(spacyBackend, fmt.Errorf("spacy request failed: %w", err))
	}
	if resp.StatusCode() == http.StatusServiceUnavailable {
		return nil, errors.ErrAnalyzerUnavailable(spacyBackend, fmt.Errorf("spacy returned status %d", resp.StatusCode()))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("spacy returned status %d", resp.StatusCode())
	}

	if result.Entities == nil {
		result.Entities = []Entity{}
	}
	if result.Tokens == nil {
		result.Tokens = []Token{}
	}
	if result.Sentences == nil {
		result.Sentences = []Sentence{}
	}

	return &result, nil
}

// Ping checks that the service is up and its model is loaded
func (c *SpacyClient) Ping(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("spacy health check failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("spacy health check returned status %d", resp.StatusCode())
	}
	return nil
}

// WaitReady polls Ping with exponential backoff until it succeeds or maxWait
// elapses. Used once at startup; request paths never retry.
func (c *SpacyClient) WaitReady(ctx context.Context, maxWait time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = maxWait

	attempt := 0
	op := func() error {
		attempt++
		err := c.Ping(ctx)
		if err != nil {
			c.logger.Warn("spacy service not ready",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
