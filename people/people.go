// Package people is a client for the personnel directory service.
//
// The directory is an external collaborator: lookups return nil for
// unknown IDs, and upstream failures propagate to the caller without
// retries. Timeout policy belongs to the http.Client the caller supplies.
package people

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/janelia-scicomp/biblio/names"
)

// SupOrg is a supervisory-organization reference on a person record.
type SupOrg struct {
	SupOrgName string `json:"supOrgName"`
}

// Person is a personnel directory record.
type Person struct {
	EmployeeID          string   `json:"employeeId"`
	NameFirst           string   `json:"nameFirst"`
	NameFirstPreferred  string   `json:"nameFirstPreferred"`
	NameMiddle          string   `json:"nameMiddle"`
	NameMiddlePreferred string   `json:"nameMiddlePreferred"`
	NameLast            string   `json:"nameLast"`
	NameLastPreferred   string   `json:"nameLastPreferred"`
	UserIDO365          string   `json:"userIdO365"`
	WorkerType          string   `json:"workerType"`
	CCDescr             string   `json:"ccDescr"`
	Affiliations        []SupOrg `json:"affiliations"`
	ManagedTeams        []SupOrg `json:"managedTeams"`
}

// Names returns the directory name fields for variant generation.
func (p *Person) Names() names.Directory {
	return names.Directory{
		First:           p.NameFirst,
		FirstPreferred:  p.NameFirstPreferred,
		Middle:          p.NameMiddle,
		MiddlePreferred: p.NameMiddlePreferred,
		Last:            p.NameLast,
		LastPreferred:   p.NameLastPreferred,
	}
}

// Client calls the personnel directory service.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// NewClient creates a directory client. A nil http.Client uses the default.
func NewClient(baseURL, apiKey string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, hc: hc}
}

// Lookup fetches a person by employee ID. Returns nil when the
// directory has no such person.
func (c *Client) Lookup(ctx context.Context, employeeID string) (*Person, error) {
	endpoint := fmt.Sprintf("%s/Person/GetById/%s", c.baseURL, url.PathEscape(employeeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building directory request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("APIKey", c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling personnel directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("personnel directory returned %s for %s", resp.Status, employeeID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading directory response: %w", err)
	}
	var person Person
	if err := json.Unmarshal(body, &person); err != nil {
		return nil, fmt.Errorf("decoding directory response: %w", err)
	}
	if person.EmployeeID == "" {
		person.EmployeeID = employeeID
	}
	return &person, nil
}
