package record

import (
	"strings"

	"github.com/janelia-scicomp/biblio/value"
)

// preprintVenues names the venues for preprint-server DOI prefixes that
// publish records without a container title.
var preprintVenues = map[string]string{
	"10.1101":  "bioRxiv",
	"10.21203": "Research Square",
	"10.26434": "ChemRxiv",
	"10.31219": "OSF Preprints",
	"10.48550": "arXiv",
}

// Journal returns a formatted journal/venue string, or "" when no venue
// is determinable or the publishing date is unknown.
//
// Crossref venue fallback chain: abbreviated container title, container
// title, institution name, then the known preprint-server prefixes. The
// venue is suffixed with the publication year; when full is set, the
// volume and page follow ("Venue. YYYY; vol: page"). A record without a
// page uses the trailing DOI segment as a locator instead.
//
// DataCite records format as "publisher. YYYY".
func (r Record) Journal(full bool) string {
	year := r.PublishingYear()
	if year == "" {
		return ""
	}

	if r.Variant() == DataCite {
		publisher := value.Text(r["publisher"])
		if publisher == "" {
			return ""
		}
		return publisher + ". " + year
	}

	venue := r.venue()
	if venue == "" {
		return ""
	}
	journal := venue + ". " + year
	if !full {
		return journal
	}
	if volume := value.Text(r["volume"]); volume != "" {
		journal += "; " + volume
	}
	if page := value.Text(r["page"]); page != "" {
		journal += ": " + page
	} else if doi := r.DOI(); doi != "" {
		segments := strings.Split(doi, "/")
		journal += ": " + segments[len(segments)-1]
	}
	return journal
}

func (r Record) venue() string {
	if v := value.FirstText(r["short-container-title"]); v != "" {
		return v
	}
	if v := value.FirstText(r["container-title"]); v != "" {
		return v
	}
	// institution may be a single object or a list
	for _, inst := range value.Maps(r["institution"]) {
		if name := value.Text(inst["name"]); name != "" {
			return name
		}
	}
	prefix, _, _ := strings.Cut(r.DOI(), "/")
	return preprintVenues[prefix]
}
