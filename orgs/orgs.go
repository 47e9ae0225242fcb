// Package orgs fetches the supervisory-organization registry and
// scopes it to one location.
package orgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client calls the supervisory-organization service.
type Client struct {
	url string
	// marker scopes results to organizations whose location code
	// contains it.
	marker string
	hc     *http.Client
}

// NewClient creates an organization client. A nil http.Client uses the
// default.
func NewClient(url, marker string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{url: url, marker: marker, hc: hc}
}

// Fetch returns supervisory organizations as a name-to-code map,
// limited to entries whose location code contains the client's marker.
func (c *Client) Fetch(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building organization request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling organization service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("organization service returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading organization response: %w", err)
	}

	var envelope struct {
		Result []struct {
			SupOrgName   string `json:"SUPORGNAME"`
			SupOrgCode   string `json:"SUPORGCODE"`
			LocationCode string `json:"LOCATIONCODE"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding organization response: %w", err)
	}

	orgs := make(map[string]string)
	for _, org := range envelope.Result {
		if !strings.Contains(org.LocationCode, c.marker) || org.SupOrgCode == "" {
			continue
		}
		orgs[org.SupOrgName] = org.SupOrgCode
	}
	return orgs, nil
}
