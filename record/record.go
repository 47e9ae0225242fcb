// Package record implements schema-uniform access to bibliographic records
// from the two citation registries this library understands: Crossref-style
// records (DOI-keyed, nested date-part arrays) and DataCite-style records
// (creators/givenName/familyName, a single registered timestamp).
//
// A Record is the decoded registry JSON document. The variant is determined
// once, by the presence of the top-level DOI field, and every accessor
// dispatches on it. Missing optional data degrades to documented fallback
// values rather than errors.
package record

import (
	"strings"

	"github.com/janelia-scicomp/biblio/value"
)

// Variant identifies which registry schema a record uses.
type Variant int

const (
	// Crossref is the DOI-keyed schema with date-part arrays.
	Crossref Variant = iota
	// DataCite is the creators/registered schema.
	DataCite
)

// String returns the registry name for the variant.
func (v Variant) String() string {
	if v == DataCite {
		return "datacite"
	}
	return "crossref"
}

// Record is a decoded bibliographic record from either registry.
type Record map[string]any

// Variant reports which schema the record uses. A record is Crossref
// if and only if it carries a top-level DOI field.
func (r Record) Variant() Variant {
	if _, ok := r["DOI"]; ok {
		return Crossref
	}
	return DataCite
}

// DOI returns the record's DOI. Crossref records carry it under "DOI",
// DataCite records under "doi".
func (r Record) DOI() string {
	if v, ok := r["DOI"]; ok {
		return value.Text(v)
	}
	return value.Text(r["doi"])
}

// Title returns the record title, or "" when absent.
func (r Record) Title() string {
	if r.Variant() == Crossref {
		return value.FirstText(r["title"])
	}
	for _, t := range value.Maps(r["titles"]) {
		if title := value.Text(t["title"]); title != "" {
			return title
		}
	}
	return ""
}

// Abstract returns the record abstract, or "" when absent.
// Crossref carries the abstract verbatim; DataCite records it as the
// first description entry typed as an abstract.
func (r Record) Abstract() string {
	if r.Variant() == Crossref {
		return value.Text(r["abstract"])
	}
	for _, d := range value.Maps(r["descriptions"]) {
		if value.Text(d["descriptionType"]) == "Abstract" {
			if desc := value.Text(d["description"]); desc != "" {
				return desc
			}
		}
	}
	return ""
}

// IsPreprint reports whether the record describes a preprint.
// Crossref flags posted content with a "preprint" subtype; DataCite
// carries the resource type general in the types block.
func (r Record) IsPreprint() bool {
	if r.Variant() == Crossref {
		if value.Text(r["subtype"]) == "preprint" {
			return true
		}
		return value.Text(r["type"]) == "posted-content"
	}
	types := value.Map(r["types"])
	if types == nil {
		return false
	}
	return strings.EqualFold(value.Text(types["resourceTypeGeneral"]), "Preprint")
}
