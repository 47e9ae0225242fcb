package citation

import (
	"context"
	"fmt"

	"github.com/janelia-scicomp/biblio/doi"
	"github.com/janelia-scicomp/biblio/pubmed"
	"github.com/janelia-scicomp/biblio/record"
)

// Composer builds short citations from a DOI, fetching the record on
// demand. Store and PubMed are optional.
type Composer struct {
	Store  doi.Store
	Client *doi.Client
	PubMed *pubmed.Client
}

// Short produces a citation like "Meissner et al. 2024", or
// "Meissner. 2024" for a single author. With expanded set, the year is
// replaced by the title and the full journal string, whose own year
// stands in for it: "Meissner et al. Title. Journal.". A PubMed link
// is appended when the identifier has a known PMID.
//
// Returns "" without error when the identifier yields no record, or
// when no author qualifies as the lead author.
func (c *Composer) Short(ctx context.Context, id string, expanded bool) (string, error) {
	rec, err := doi.GetRecord(ctx, id, c.Store, c.Client)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	family := leadFamily(rec)
	if family == "" {
		return "", nil
	}

	cite := family + "."
	if len(rec.Authors()) > 1 {
		cite = family + " et al."
	}
	if expanded {
		cite = fmt.Sprintf("%s %s. %s.", cite, rec.Title(), rec.Journal(true))
	} else {
		cite = fmt.Sprintf("%s %s", cite, rec.PublishingYear())
	}

	if c.PubMed != nil {
		pmid, err := c.PubMed.Lookup(ctx, rec.DOI())
		if err != nil {
			return "", err
		}
		if pmid != "" {
			cite += fmt.Sprintf(" <a href='https://pubmed.ncbi.nlm.nih.gov/%s' target='_blank'>PubMed</a>", pmid)
		}
	}
	return cite, nil
}

// leadFamily picks the family name the citation leads with. Crossref
// records must mark a lead author explicitly; DataCite records fall
// back to the first creator's display name, then a placeholder.
func leadFamily(rec record.Record) string {
	authors := rec.Authors()
	if len(authors) == 0 {
		return ""
	}
	if rec.Variant() == record.Crossref {
		for _, a := range authors {
			if a.First && a.Family != "" {
				return a.Family
			}
		}
		return ""
	}
	a := authors[0]
	switch {
	case a.Family != "":
		return a.Family
	case a.Name != "":
		return a.Name
	}
	return "Unknown author"
}
