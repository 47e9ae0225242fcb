package record

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, blob string) Record {
	t.Helper()
	var r Record
	if err := json.Unmarshal([]byte(blob), &r); err != nil {
		t.Fatalf("decoding record: %v", err)
	}
	return r
}

func TestVariantDetection(t *testing.T) {
	crossref := decode(t, `{"DOI": "10.7554/elife.98405", "title": ["x"]}`)
	if crossref.Variant() != Crossref {
		t.Errorf("record with DOI field: got %v, want Crossref", crossref.Variant())
	}

	datacite := decode(t, `{"doi": "10.25378/janelia.23816295.v1", "creators": []}`)
	if datacite.Variant() != DataCite {
		t.Errorf("record without DOI field: got %v, want DataCite", datacite.Variant())
	}

	if crossref.DOI() != "10.7554/elife.98405" {
		t.Errorf("crossref DOI: got %q", crossref.DOI())
	}
	if datacite.DOI() != "10.25378/janelia.23816295.v1" {
		t.Errorf("datacite DOI: got %q", datacite.DOI())
	}
}

func TestTitle(t *testing.T) {
	crossref := decode(t, `{"DOI": "10.1/x", "title": ["A split-GAL4 driver line resource for Drosophila CNS cell types"]}`)
	if got := crossref.Title(); got != "A split-GAL4 driver line resource for Drosophila CNS cell types" {
		t.Errorf("crossref title: got %q", got)
	}

	datacite := decode(t, `{"titles": [{"title": "Fly brain atlas"}]}`)
	if got := datacite.Title(); got != "Fly brain atlas" {
		t.Errorf("datacite title: got %q", got)
	}

	empty := decode(t, `{"DOI": "10.1/x"}`)
	if got := empty.Title(); got != "" {
		t.Errorf("missing title: got %q, want empty", got)
	}
}

func TestAbstract(t *testing.T) {
	crossref := decode(t, `{"DOI": "10.1/x", "abstract": "<p>Verbatim.</p>"}`)
	if got := crossref.Abstract(); got != "<p>Verbatim.</p>" {
		t.Errorf("crossref abstract: got %q", got)
	}

	datacite := decode(t, `{"descriptions": [
		{"descriptionType": "Other", "description": "not this"},
		{"descriptionType": "Abstract", "description": "the abstract"}
	]}`)
	if got := datacite.Abstract(); got != "the abstract" {
		t.Errorf("datacite abstract: got %q", got)
	}
}

func TestPublishingDate(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want string
	}{
		{
			"crossref published",
			`{"DOI": "10.1/x", "published": {"date-parts": [[2011, 9, 1]]}}`,
			"2011-09-01",
		},
		{
			"crossref zero padding",
			`{"DOI": "10.1/x", "published-print": {"date-parts": [[2024, 7, 30]]}}`,
			"2024-07-30",
		},
		{
			"crossref section priority",
			`{"DOI": "10.1/x",
			  "created": {"date-parts": [[2020, 1, 1]]},
			  "published-online": {"date-parts": [[2019, 2, 3]]}}`,
			"2019-02-03",
		},
		{
			"crossref incomplete date array skipped",
			`{"DOI": "10.1/x",
			  "published": {"date-parts": [[2011, 9]]},
			  "created": {"date-parts": [[2011, 8, 15]]}}`,
			"2011-08-15",
		},
		{
			"crossref no qualifying section",
			`{"DOI": "10.1/x", "published": {"date-parts": [[2011]]}}`,
			DateUnknown,
		},
		{
			"datacite registered timestamp",
			`{"registered": "2023-07-21T14:03:12Z", "creators": []}`,
			"2023-07-21",
		},
		{
			"datacite missing registered",
			`{"creators": []}`,
			DateUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decode(t, tt.blob)
			if got := rec.PublishingDate(); got != tt.want {
				t.Errorf("PublishingDate: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJournal(t *testing.T) {
	rec := decode(t, `{
		"DOI": "10.1002/cne.22542",
		"container-title": ["J of Comparative Neurology"],
		"published": {"date-parts": [[2011, 9, 1]]},
		"volume": "519",
		"page": "661-689"
	}`)
	want := "J of Comparative Neurology. 2011; 519: 661-689"
	if got := rec.Journal(true); got != want {
		t.Errorf("Journal(full): got %q, want %q", got, want)
	}
	if got := rec.Journal(false); got != "J of Comparative Neurology. 2011" {
		t.Errorf("Journal(short): got %q", got)
	}
}

func TestJournalFallbacks(t *testing.T) {
	// Abbreviated title beats the full container title.
	rec := decode(t, `{
		"DOI": "10.1/x",
		"short-container-title": ["J Comp Neurol"],
		"container-title": ["J of Comparative Neurology"],
		"published": {"date-parts": [[2011, 9, 1]]}
	}`)
	if got := rec.Journal(false); got != "J Comp Neurol. 2011" {
		t.Errorf("short-container-title priority: got %q", got)
	}

	// Institution name, with the trailing DOI segment as locator.
	rec = decode(t, `{
		"DOI": "10.1101/2022.07.20.500311",
		"institution": [{"name": "Cold Spring Harbor Laboratory"}],
		"posted": {"date-parts": [[2022, 7, 20]]}
	}`)
	if got := rec.Journal(true); got != "Cold Spring Harbor Laboratory. 2022: 2022.07.20.500311" {
		t.Errorf("institution venue: got %q", got)
	}

	// Known preprint prefix when nothing else names the venue.
	rec = decode(t, `{
		"DOI": "10.1101/2022.07.20.500311",
		"posted": {"date-parts": [[2022, 7, 20]]}
	}`)
	if got := rec.Journal(false); got != "bioRxiv. 2022" {
		t.Errorf("preprint prefix venue: got %q", got)
	}

	// No venue at all.
	rec = decode(t, `{"DOI": "10.9999/nothing", "published": {"date-parts": [[2020, 1, 2]]}}`)
	if got := rec.Journal(true); got != "" {
		t.Errorf("no venue: got %q, want empty", got)
	}

	// Unknown date fails closed.
	rec = decode(t, `{"DOI": "10.1/x", "container-title": ["Venue"]}`)
	if got := rec.Journal(true); got != "" {
		t.Errorf("unknown date: got %q, want empty", got)
	}

	// DataCite: publisher and year.
	rec = decode(t, `{"publisher": "Janelia Research Campus", "registered": "2023-07-21T14:03:12Z"}`)
	if got := rec.Journal(true); got != "Janelia Research Campus. 2023" {
		t.Errorf("datacite journal: got %q", got)
	}
}

func TestIsPreprint(t *testing.T) {
	preprint := decode(t, `{"DOI": "10.1101/x", "type": "posted-content", "subtype": "preprint"}`)
	if !preprint.IsPreprint() {
		t.Error("posted-content preprint not detected")
	}
	article := decode(t, `{"DOI": "10.1186/s12859-024-05732-7", "type": "journal-article"}`)
	if article.IsPreprint() {
		t.Error("journal article flagged as preprint")
	}
	dcPreprint := decode(t, `{"types": {"resourceTypeGeneral": "Preprint"}}`)
	if !dcPreprint.IsPreprint() {
		t.Error("datacite preprint not detected")
	}
}
