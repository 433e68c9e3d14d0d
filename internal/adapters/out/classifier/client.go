// Package classifier implements ports.Classifier over the classification
// service HTTP API.
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"orderprocessing/internal/core/domain/model/classification"
	"orderprocessing/internal/pkg/errs"
)

const serviceName = "classification service"

// Config holds the classification service endpoint.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPClient calls GET <base>/api/v1/classifications/<orderID>.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    *url.URL
}

type classifyResponse struct {
	Status string   `json:"status"`
	Data   *float64 `json:"data"`
}

// NewHTTPClient creates a client for the configured base URL. A zero timeout
// falls back to 30 seconds.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("classifier base url is invalid", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"classifier base url is invalid",
			fmt.Errorf("%q is not an absolute url", cfg.BaseURL),
		)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}, nil
}

// Classify returns the service verdict for the order. Transport failures,
// non-2xx responses and undecodable bodies are ServiceCommunicationErrors.
// A well-formed verdict of failure is returned as a Result, not an error.
func (c *HTTPClient) Classify(ctx context.Context, orderID int64) (classification.Result, error) {
	u := c.baseURL.JoinPath("api", "v1", "classifications", strconv.FormatInt(orderID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return classification.Result{}, errs.NewServiceCommunicationErrorWithCause(serviceName, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classification.Result{}, errs.NewServiceCommunicationErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return classification.Result{}, errs.NewServiceCommunicationErrorWithCause(
			serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	var body classifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return classification.Result{}, errs.NewServiceCommunicationErrorWithCause(serviceName, fmt.Errorf("decode response: %w", err))
	}

	status := classification.Status(body.Status)
	if status == classification.Success && body.Data == nil {
		return classification.Result{}, errs.NewServiceCommunicationErrorWithCause(serviceName, errors.New("success without score"))
	}

	var score float64
	if body.Data != nil {
		score = *body.Data
	}

	return classification.NewResult(status, score), nil
}
