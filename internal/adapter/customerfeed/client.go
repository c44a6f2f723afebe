// Package customerfeed integrates the external customer directory the
// shop imports its customer base from.
package customerfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/polkiloo/webshop/internal/domain/model"
)

// Client exposes operations to query the customer feed.
type Client interface {
	FetchCustomers(ctx context.Context) ([]model.Customer, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// record mirrors a single entry of the feed's JSON payload.
type record struct {
	Name string `json:"name"`
}

// NewHTTPClient creates an HTTP feed client with default timeout.
func NewHTTPClient(endpoint string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("feed url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchCustomers downloads the full customer list from the feed.
func (c *HTTPClient) FetchCustomers(ctx context.Context) ([]model.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("customer feed request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("customer feed error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var records []record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, model.Customer{Name: r.Name})
	}
	return customers, nil
}
