// Package citation turns schema-adapted records into human-readable
// author lists and short citations.
package citation

import (
	"context"
	"fmt"
	"strings"

	"github.com/janelia-scicomp/biblio/identity"
	"github.com/janelia-scicomp/biblio/record"
	"github.com/janelia-scicomp/biblio/resolve"
)

// Style selects the author-name formatting convention.
type Style string

const (
	// StyleDIS renders initials without periods: "Meissner, GW".
	StyleDIS Style = "dis"
	// StyleFlyLight renders spaced, period-terminated initials:
	// "Meissner, G. W.".
	StyleFlyLight Style = "flylight"
)

// ListOptions controls author list rendering.
type ListOptions struct {
	Style Style
	// ORCIDLinks wraps each linked author's name in an anchor with the
	// ORCID icon.
	ORCIDLinks bool
	ORCIDLogo  string
	// Projects substitutes a project team name for an author whose
	// literal display name appears in the map.
	Projects identity.ProjectMap
}

// AuthorDetails resolves every author on a record, in record order.
// The first entry (or any entry with an explicit first-sequence
// marker) is flagged is_first, the final entry is_last. When reg is
// nil the payloads carry name and affiliation data only. Returns nil
// when the record has no authors.
func AuthorDetails(ctx context.Context, rec record.Record, reg identity.Registry, org string) ([]resolve.Author, error) {
	authors := rec.Authors()
	if authors == nil {
		return nil, nil
	}
	out := make([]resolve.Author, 0, len(authors))
	for i, a := range authors {
		payload := resolve.FromRecordAuthor(a)
		if i == 0 {
			payload.IsFirst = true
		}
		payload.IsLast = i == len(authors)-1
		if reg != nil {
			if err := resolve.Resolve(ctx, &payload, reg, org); err != nil {
				return nil, fmt.Errorf("resolving %s %s: %w", a.Given, a.Family, err)
			}
		}
		out = append(out, payload)
	}
	return out, nil
}

// AuthorNames renders one display name per author. Entries without any
// usable name are skipped. Returns nil when nothing renders.
func AuthorNames(rec record.Record, opts ListOptions) []string {
	var names []string
	for _, a := range rec.Authors() {
		full := displayName(a, opts.Style)
		if full == "" {
			continue
		}
		if opts.Projects != nil {
			if project, ok := opts.Projects.Lookup(bareName(a)); ok {
				full = project
			}
		}
		if opts.ORCIDLinks && a.ORCIDURL != "" {
			full = fmt.Sprintf("<a href='%s' target='_blank'>%s"+
				"<img alt='ORCID logo' src='%s' width='16' height='16' /></a>",
				a.ORCIDURL, full, opts.ORCIDLogo)
		}
		names = append(names, full)
	}
	return names
}

// AuthorListText renders the full author list as one string. All but
// the last author join with ", "; the last joins with " & " for the
// flylight style and ", " otherwise, and ends with a period. A single
// author renders as-is.
func AuthorListText(rec record.Record, opts ListOptions) string {
	names := AuthorNames(rec, opts)
	if names == nil {
		return ""
	}
	last := names[len(names)-1]
	rest := names[:len(names)-1]
	if len(rest) == 0 {
		return last
	}
	if !strings.HasSuffix(last, ".") {
		last += "."
	}
	punc := ", "
	if opts.Style == StyleFlyLight {
		punc = " & "
	}
	return strings.Join(rest, ", ") + punc + last
}

func displayName(a record.Author, style Style) string {
	switch {
	case a.Given != "" && a.Family != "":
		punc := ""
		if style == StyleFlyLight {
			punc = "."
		}
		var initials []string
		for _, gvn := range strings.Fields(a.Given) {
			initials = append(initials, string([]rune(gvn)[0])+punc)
		}
		sep := ""
		if style == StyleFlyLight {
			sep = " "
		}
		return a.Family + ", " + strings.Join(initials, sep)
	case a.Family != "":
		return a.Family
	case a.Name != "":
		return a.Name
	}
	return ""
}

// bareName is the literal display form used for project lookups.
func bareName(a record.Author) string {
	if a.Name != "" {
		return a.Name
	}
	return strings.TrimSpace(a.Given + " " + a.Family)
}
