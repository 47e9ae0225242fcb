package doi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/janelia-scicomp/biblio/record"
)

func TestIsDataCite(t *testing.T) {
	tests := []struct {
		doi  string
		want bool
	}{
		{"10.25378/janelia.23816295.v1", true},
		{"10.7554/elife.98405", false},
		{"10.48550/arXiv.2404.03707", true},
		{"10.5281/zenodo.8331911", true},
		{"10.17912/micropub.biology.000885", true},
		{"10.1002/cne.22542", false},
	}
	for _, tt := range tests {
		if got := IsDataCite(tt.doi); got != tt.want {
			t.Errorf("IsDataCite(%q): got %v, want %v", tt.doi, got, tt.want)
		}
	}
}

func registryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/works/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works/10.7554%2Felife.98405" && r.URL.Path != "/works/10.7554/elife.98405" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"status": "ok", "message": {
			"DOI": "10.7554/elife.98405",
			"title": ["A split-GAL4 driver line resource for Drosophila CNS cell types"]
		}}`))
	})
	mux.HandleFunc("/dois/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"attributes": {
			"titles": [{"title": "Fly brain atlas"}],
			"registered": "2023-07-21T14:03:12Z"
		}}}`))
	})
	return httptest.NewServer(mux)
}

func TestClientFetch(t *testing.T) {
	srv := registryServer(t)
	defer srv.Close()
	c := NewClient(srv.URL, srv.URL, nil)
	ctx := context.Background()

	// Crossref DOIs route to /works.
	rec, err := c.Fetch(ctx, "10.7554/elife.98405")
	if err != nil {
		t.Fatalf("Fetch crossref: %v", err)
	}
	if rec == nil || rec.Variant() != record.Crossref {
		t.Fatalf("crossref record: got %v", rec)
	}
	if rec.Title() != "A split-GAL4 driver line resource for Drosophila CNS cell types" {
		t.Errorf("title: got %q", rec.Title())
	}

	// DataCite DOIs route to /dois; the DOI is backfilled into the
	// attributes the registry returns.
	rec, err = c.Fetch(ctx, "10.25378/janelia.23816295.v1")
	if err != nil {
		t.Fatalf("Fetch datacite: %v", err)
	}
	if rec.Variant() != record.DataCite {
		t.Errorf("datacite record variant: got %v", rec.Variant())
	}
	if rec.DOI() != "10.25378/janelia.23816295.v1" {
		t.Errorf("backfilled DOI: got %q", rec.DOI())
	}

	// Unknown DOIs are a nil record, not an error.
	rec, err = c.Fetch(ctx, "10.9999/unknown")
	if err != nil {
		t.Fatalf("Fetch unknown: %v", err)
	}
	if rec != nil {
		t.Errorf("unknown DOI: got %v, want nil", rec)
	}
}

func TestGetRecordStoreFirst(t *testing.T) {
	ctx := context.Background()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"status": "ok", "message": {"DOI": "10.1/x", "title": ["remote"]}}`))
	}))
	defer srv.Close()

	store := NewMemoryStore()
	client := NewClient(srv.URL, srv.URL, nil)

	rec, err := GetRecord(ctx, "10.1/x", store, client)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if rec.Title() != "remote" {
		t.Errorf("fetched title: got %q", rec.Title())
	}
	if hits != 1 {
		t.Fatalf("registry hits: got %d, want 1", hits)
	}

	// Second call is served from the store.
	if _, err := GetRecord(ctx, "10.1/x", store, client); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Errorf("registry hits after cached read: got %d, want 1", hits)
	}
}
