// Package nhtsa calls the NHTSA vPIC API to decode VINs into vehicle
// attributes. See: https://vpic.nhtsa.dot.gov/api/
package nhtsa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ashmarin/vinbot/internal/domain"
	"github.com/ashmarin/vinbot/internal/shared"
)

// DefaultBaseURL is the production vPIC endpoint.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

// DefaultTimeout bounds each decode request.
const DefaultTimeout = 15 * time.Second

// serviceName labels this upstream in error messages.
const serviceName = "decode service"

// Client calls the vPIC DecodeVin endpoint.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a decode client. Empty baseURL falls back to the
// production endpoint; a non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// decodeResponse mirrors the vPIC DecodeVin JSON body. Values may be null.
type decodeResponse struct {
	Results []struct {
		Variable string  `json:"Variable"`
		Value    *string `json:"Value"`
	} `json:"Results"`
}

// Decode fetches and projects the attributes for one VIN.
func (c *Client) Decode(ctx context.Context, vin domain.VIN) (domain.DecodedAttributes, error) {
	endpoint := fmt.Sprintf("%s/vehicles/DecodeVin/%s?format=json", c.baseURL, url.PathEscape(vin.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.DecodedAttributes{}, fmt.Errorf("failed to build decode request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if shared.IsTimeoutError(err) {
			return domain.DecodedAttributes{}, shared.ErrTimeout
		}
		return domain.DecodedAttributes{}, fmt.Errorf("decode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.DecodedAttributes{}, &shared.UpstreamStatusError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	var body decodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.DecodedAttributes{}, fmt.Errorf("failed to parse decode response: %w", err)
	}

	return project(vin, body), nil
}
