// Package pubmed resolves DOIs to PubMed identifiers through the
// NCBI ID converter service.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/janelia-scicomp/biblio/value"
)

// Client calls the ID converter service.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a converter client. A nil http.Client uses the default.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, hc: hc}
}

// Lookup returns the PMID for a DOI, or "" when the converter has no
// mapping. Upstream failures are errors.
func (c *Client) Lookup(ctx context.Context, doi string) (string, error) {
	endpoint := c.baseURL + "?format=json&ids=" + url.QueryEscape(doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building converter request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ID converter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ID converter returned %s for %s", resp.Status, doi)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading converter response: %w", err)
	}

	var envelope struct {
		Status  string           `json:"status"`
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("decoding converter response for %s: %w", doi, err)
	}
	if envelope.Status != "ok" || len(envelope.Records) == 0 {
		return "", nil
	}
	return value.Text(envelope.Records[0]["pmid"]), nil
}
