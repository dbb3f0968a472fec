// Package ipapi resolves an IP address to an approximate location using the
// ip-api.com service.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

// Client talks to the ip-api.com geolocation service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new ip-api client. The free tier is HTTP only.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://ip-api.com/json"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// lookupResponse is the ip-api.com payload.
type lookupResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	Query       string  `json:"query"`
}

// Lookup resolves ip to a location. An empty ip resolves the caller's own
// public address, which is only useful when the server itself is the client.
func (c *Client) Lookup(ctx context.Context, ip string) (models.Location, error) {
	endpoint := c.BaseURL
	if ip != "" {
		endpoint += "/" + ip
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Location{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.Location{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, err
	}

	if resp.StatusCode >= 400 {
		return models.Location{}, fmt.Errorf("ipapi: status %d", resp.StatusCode)
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return models.Location{}, err
	}

	// ip-api reports failures with HTTP 200 and status "fail".
	if result.Status != "success" {
		return models.Location{}, fmt.Errorf("ipapi: lookup failed: %s", result.Message)
	}

	return models.Location{
		City:        result.City,
		Region:      result.RegionName,
		Country:     result.Country,
		CountryCode: result.CountryCode,
		Latitude:    result.Lat,
		Longitude:   result.Lon,
		Timezone:    result.Timezone,
		IP:          result.Query,
	}, nil
}
