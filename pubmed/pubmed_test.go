package pubmed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("ids") {
		case "10.7554/elife.98405":
			w.Write([]byte(`{"status": "ok", "records": [{"pmid": "39077991", "doi": "10.7554/elife.98405"}]}`))
		case "10.1101/no.pmid":
			// The converter answers ok with an unmapped record.
			w.Write([]byte(`{"status": "ok", "records": []}`))
		default:
			w.Write([]byte(`{"status": "error"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	ctx := context.Background()

	pmid, err := c.Lookup(ctx, "10.7554/elife.98405")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if pmid != "39077991" {
		t.Errorf("pmid: got %q, want %q", pmid, "39077991")
	}

	pmid, err = c.Lookup(ctx, "10.1101/no.pmid")
	if err != nil {
		t.Fatalf("Lookup unmapped: %v", err)
	}
	if pmid != "" {
		t.Errorf("unmapped DOI: got %q, want empty", pmid)
	}

	pmid, err = c.Lookup(ctx, "not-a-doi")
	if err != nil {
		t.Fatalf("Lookup error status: %v", err)
	}
	if pmid != "" {
		t.Errorf("error status: got %q, want empty", pmid)
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Lookup(context.Background(), "10.1/x"); err == nil {
		t.Error("expected error for 502 response")
	}
}
