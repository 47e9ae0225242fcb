package record

import (
	"strings"

	"github.com/janelia-scicomp/biblio/value"
)

// Author is one schema-adapted author entry from a record.
type Author struct {
	// Given and Family are the structured name parts, with unicode
	// spaces normalized. Given is "" when the record has none.
	Given  string
	Family string
	// Name is the combined display name, present when structured
	// name parts are absent (organizations, some DataCite creators).
	Name string
	// ORCID is the canonical identifier value (trailing path segment
	// of a URL-prefixed identifier). ORCIDURL keeps the form the
	// record carried, for link rendering.
	ORCID    string
	ORCIDURL string
	// Affiliations preserves the record's affiliation order.
	Affiliations []Affiliation
	// First is the record's explicit first-author sequence marker.
	First bool
}

// Affiliation is one asserted affiliation on an author entry.
type Affiliation struct {
	Name string
	// RORIDs holds organization-registry identifiers (trailing path
	// segments of ROR URLs) when the entry is structured.
	RORIDs []string
}

// AffiliationNames returns the affiliation names in record order.
func (a Author) AffiliationNames() []string {
	var names []string
	for _, aff := range a.Affiliations {
		if aff.Name != "" {
			names = append(names, aff.Name)
		}
	}
	return names
}

// Authors returns the schema-adapted author list.
// Crossref records use the author field, falling back to editor;
// DataCite records use creators. Returns nil when the record has no
// author list at all.
func (r Record) Authors() []Author {
	var entries []map[string]any
	variant := r.Variant()
	if variant == Crossref {
		entries = value.Maps(r["author"])
		if entries == nil {
			entries = value.Maps(r["editor"])
		}
	} else {
		entries = value.Maps(r["creators"])
	}
	if entries == nil {
		return nil
	}

	authors := make([]Author, 0, len(entries))
	for _, entry := range entries {
		authors = append(authors, parseAuthor(entry, variant))
	}
	return authors
}

func parseAuthor(entry map[string]any, variant Variant) Author {
	givenKey, familyKey := "given", "family"
	if variant == DataCite {
		givenKey, familyKey = "givenName", "familyName"
	}

	a := Author{
		Given:  value.CleanText(entry[givenKey]),
		Family: value.CleanText(entry[familyKey]),
		Name:   value.CleanText(entry["name"]),
		First:  value.Text(entry["sequence"]) == "first",
	}

	// Best-effort heuristic: a DataCite creator with only a combined
	// display name gets its first and last tokens as given/family.
	// Wrong for multi-word family names; callers wanting certainty
	// should check Name.
	if variant == DataCite && a.Family == "" && strings.Contains(a.Name, " ") {
		tokens := strings.Fields(a.Name)
		a.Given = tokens[0]
		a.Family = tokens[len(tokens)-1]
	}

	a.ORCIDURL, a.ORCID = parseORCID(entry, variant)
	a.Affiliations = parseAffiliations(entry["affiliation"])
	return a
}

// parseORCID finds the author's ORCID. Crossref carries it in an ORCID
// field, DataCite in the nameIdentifiers list. The canonical value is
// the trailing path segment; registries prefix it with the orcid.org URL.
func parseORCID(entry map[string]any, variant Variant) (url, id string) {
	if variant == Crossref {
		url = value.Text(entry["ORCID"])
	} else {
		for _, ni := range value.Maps(entry["nameIdentifiers"]) {
			if strings.EqualFold(value.Text(ni["nameIdentifierScheme"]), "ORCID") {
				url = value.Text(ni["nameIdentifier"])
				break
			}
		}
	}
	if url == "" {
		return "", ""
	}
	parts := strings.Split(url, "/")
	return url, parts[len(parts)-1]
}

// parseAffiliations handles both shapes the registries emit: bare
// strings and structured entries with a name and optional identifier
// list (ROR IDs on Crossref records).
func parseAffiliations(v any) []Affiliation {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var affs []Affiliation
	for _, item := range arr {
		switch entry := item.(type) {
		case string:
			if entry != "" {
				affs = append(affs, Affiliation{Name: entry})
			}
		case map[string]any:
			aff := Affiliation{Name: value.CleanText(entry["name"])}
			for _, id := range value.Maps(entry["id"]) {
				if !strings.EqualFold(value.Text(id["id-type"]), "ROR") {
					continue
				}
				ror := value.Text(id["id"])
				segments := strings.Split(ror, "/")
				aff.RORIDs = append(aff.RORIDs, segments[len(segments)-1])
			}
			if aff.Name != "" || len(aff.RORIDs) > 0 {
				affs = append(affs, aff)
			}
		}
	}
	return affs
}
