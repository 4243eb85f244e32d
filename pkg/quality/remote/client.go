// Package remote provides a quality.Analyzer backed by an external model
// served over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sattva/pkg/domain"
	"sattva/pkg/quality"
	"sattva/pkg/serrors"
	"strings"
)

// MaxResponseBytes caps the size of a response body read from the model API.
const MaxResponseBytes = 1 << 20

// Client talks to the quality model API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the model API
	endpoint   string       // endpoint is the API base URL without a trailing slash
	token      string       // token is sent as the Api-Key header
}

var _ quality.Analyzer = (*Client)(nil)

// New constructs a Client for the API at endpoint.
func New(httpClient *http.Client, endpoint, token string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
	}
}

// VerifyHerb asks the model to score a batch.
func (c *Client) VerifyHerb(ctx context.Context, herbName, batchID string) (domain.QualityReport, error) {
	type verifyReq struct {
		HerbName string `json:"herbName"`
		BatchID  string `json:"batchId"`
	}

	var out domain.QualityReport
	if err := c.post(ctx, "/verify", verifyReq{HerbName: herbName, BatchID: batchID}, &out); err != nil {
		return domain.QualityReport{}, fmt.Errorf("could not verify herb: %w", err)
	}

	return out, nil
}

// PredictShelfLife asks the model for a shelf life estimate.
func (c *Client) PredictShelfLife(ctx context.Context, herbName string, qualityScore float64) (domain.ShelfLife, error) {
	type shelfLifeReq struct {
		HerbName     string  `json:"herbName"`
		QualityScore float64 `json:"qualityScore"`
	}

	var out domain.ShelfLife
	if err := c.post(ctx, "/shelf-life", shelfLifeReq{HerbName: herbName, QualityScore: qualityScore}, &out); err != nil {
		return domain.ShelfLife{}, fmt.Errorf("could not predict shelf life: %w", err)
	}

	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	bodyBytes, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > MaxResponseBytes {
		return fmt.Errorf("response body exceeds %d bytes", MaxResponseBytes)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
