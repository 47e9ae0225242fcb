// Package doi classifies DOI strings and retrieves bibliographic
// records from the Crossref and DataCite registries, with a
// store-first retrieval path backed by an optional cache.
package doi

import "strings"

// dataCiteMarkers are DOI substrings minted through DataCite rather
// than Crossref. Routing on the identifier string avoids a lookup
// against the wrong registry.
var dataCiteMarkers = []string{
	"/janelia",
	"/arxiv",
	"/d1.",
	"/micropub.biology",
	"/zenodo",
}

// IsDataCite reports whether a DOI belongs to the DataCite registry.
func IsDataCite(doi string) bool {
	lc := strings.ToLower(doi)
	for _, marker := range dataCiteMarkers {
		if strings.Contains(lc, marker) {
			return true
		}
	}
	return false
}
