package doi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/janelia-scicomp/biblio/record"
	"github.com/janelia-scicomp/biblio/value"
)

// Client fetches bibliographic records from the citation registries.
// Fetches signal an unknown DOI with a nil record; non-2xx responses
// and unparseable bodies are errors, propagated without retry.
type Client struct {
	crossrefURL string
	dataciteURL string
	hc          *http.Client
}

// NewClient creates a registry client. A nil http.Client uses the default.
func NewClient(crossrefURL, dataciteURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{crossrefURL: crossrefURL, dataciteURL: dataciteURL, hc: hc}
}

// Fetch retrieves the record for a DOI from whichever registry minted
// it, routed by IsDataCite.
func (c *Client) Fetch(ctx context.Context, doi string) (record.Record, error) {
	if IsDataCite(doi) {
		return c.FetchDataCite(ctx, doi)
	}
	return c.FetchCrossref(ctx, doi)
}

// FetchCrossref retrieves a Crossref work record. The registry wraps
// the record in a status envelope; the message field is the record.
func (c *Client) FetchCrossref(ctx context.Context, doi string) (record.Record, error) {
	body, err := c.get(ctx, c.crossrefURL+"/works/"+url.PathEscape(doi))
	if err != nil || body == nil {
		return nil, err
	}

	var envelope struct {
		Status  string        `json:"status"`
		Message record.Record `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding crossref response for %s: %w", doi, err)
	}
	if envelope.Status != "ok" || envelope.Message == nil {
		return nil, fmt.Errorf("crossref returned status %q for %s", envelope.Status, doi)
	}
	return envelope.Message, nil
}

// FetchDataCite retrieves a DataCite record. The attributes block of
// the JSON:API envelope is the record.
func (c *Client) FetchDataCite(ctx context.Context, doi string) (record.Record, error) {
	body, err := c.get(ctx, c.dataciteURL+"/dois/"+url.PathEscape(doi))
	if err != nil || body == nil {
		return nil, err
	}

	var envelope struct {
		Data struct {
			Attributes record.Record `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding datacite response for %s: %w", doi, err)
	}
	if envelope.Data.Attributes == nil {
		return nil, fmt.Errorf("datacite response for %s has no attributes", doi)
	}
	// The attributes block never carries the Crossref-style DOI key,
	// so variant detection stays correct; make sure the DOI itself is
	// present for locator fallbacks.
	if value.Text(envelope.Data.Attributes["doi"]) == "" {
		envelope.Data.Attributes["doi"] = doi
	}
	return envelope.Data.Attributes, nil
}

// get performs a GET, returning nil bytes for a 404.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building registry request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling citation registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("citation registry returned %s for %s", resp.Status, endpoint)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}
	return body, nil
}
