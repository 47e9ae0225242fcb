package citation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/janelia-scicomp/biblio/doi"
	"github.com/janelia-scicomp/biblio/pubmed"
)

const elifeWork = `{"status": "ok", "message": {
	"DOI": "10.7554/elife.98405",
	"title": ["Tools for comprehensive reconstruction and analysis of Drosophila motor circuits"],
	"container-title": ["eLife"],
	"volume": "13",
	"published": {"date-parts": [[2024, 5, 28]]},
	"author": [
		{"given": "Geoffrey W", "family": "Meissner", "sequence": "first"},
		{"given": "Rob", "family": "Svirskas", "sequence": "additional"}
	]
}}`

func testComposer(t *testing.T, pmid string) *Composer {
	t.Helper()
	crossref := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works/10.7554%2Felife.98405" && r.URL.Path != "/works/10.7554/elife.98405" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, elifeWork)
	}))
	t.Cleanup(crossref.Close)

	pm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pmid == "" {
			fmt.Fprint(w, `{"status": "error", "records": []}`)
			return
		}
		fmt.Fprintf(w, `{"status": "ok", "records": [{"pmid": "%s"}]}`, pmid)
	}))
	t.Cleanup(pm.Close)

	return &Composer{
		Store:  doi.NewMemoryStore(),
		Client: doi.NewClient(crossref.URL, crossref.URL, nil),
		PubMed: pubmed.NewClient(pm.URL, nil),
	}
}

func TestShortCitation(t *testing.T) {
	c := testComposer(t, "")
	got, err := c.Short(context.Background(), "10.7554/elife.98405", false)
	if err != nil {
		t.Fatalf("Short: %v", err)
	}
	if got != "Meissner et al. 2024" {
		t.Errorf("got %q, want %q", got, "Meissner et al. 2024")
	}
}

func TestShortCitationExpanded(t *testing.T) {
	c := testComposer(t, "")
	got, err := c.Short(context.Background(), "10.7554/elife.98405", true)
	if err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "Meissner et al. Tools for comprehensive reconstruction and analysis " +
		"of Drosophila motor circuits. eLife. 2024; 13: elife.98405."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortCitationPubMedLink(t *testing.T) {
	c := testComposer(t, "38810100")
	got, err := c.Short(context.Background(), "10.7554/elife.98405", false)
	if err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "Meissner et al. 2024" +
		" <a href='https://pubmed.ncbi.nlm.nih.gov/38810100' target='_blank'>PubMed</a>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortCitationUnknownDOI(t *testing.T) {
	c := testComposer(t, "")
	got, err := c.Short(context.Background(), "10.9999/nope", false)
	if err != nil {
		t.Fatalf("Short: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string for an unknown identifier", got)
	}
}

// Crossref records without a first-sequence family name cannot lead a
// citation.
func TestShortCitationNoLeadAuthor(t *testing.T) {
	crossref := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status": "ok", "message": {
			"DOI": "10.1/x",
			"published": {"date-parts": [[2024, 1, 2]]},
			"author": [{"given": "Jane", "family": "Doe", "sequence": "additional"}]
		}}`)
	}))
	defer crossref.Close()

	c := &Composer{Client: doi.NewClient(crossref.URL, crossref.URL, nil)}
	got, err := c.Short(context.Background(), "10.1/x", false)
	if err != nil {
		t.Fatalf("Short: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
