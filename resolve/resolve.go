// Package resolve decides whether a paper's author is a known,
// organization-affiliated individual.
//
// Resolution is a prioritized, multi-signal match against the identity
// registry: a unique-identifier match outranks a name match, which
// outranks an affiliation asserted by the paper itself. Asserted
// affiliation is authoritative for the affiliation flags regardless of
// which signal matched. Resolution is stateless: identical inputs
// against an unchanged registry produce identical output, and registry
// errors propagate unchanged.
package resolve

import (
	"context"

	"github.com/janelia-scicomp/biblio/identity"
	"github.com/janelia-scicomp/biblio/record"
)

// Match names the signal that matched an author to an identity record.
type Match string

const (
	// MatchNone means no signal matched.
	MatchNone Match = ""
	// MatchUniqueID is a unique-identifier match.
	MatchUniqueID Match = "unique-id"
	// MatchName is an exact given/family name match.
	MatchName Match = "name"
	// MatchAsserted means the paper itself asserts the affiliation.
	MatchAsserted Match = "asserted"
)

// Author is a resolved author payload: the record's author entry plus
// the resolution outcome. It is computed fresh per call and never
// persisted here.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family,omitempty"`
	// Name is the bare display name, for entries without structured
	// name parts.
	Name string `json:"name,omitempty"`
	// PaperORCID is the identifier asserted on the paper itself;
	// ORCID below is the registry's, filled in by resolution.
	PaperORCID string `json:"paper_orcid,omitempty"`
	ORCIDURL   string `json:"-"`

	Affiliations []string `json:"affiliations,omitempty"`
	RORIDs       []string `json:"-"`

	IsFirst bool `json:"is_first"`
	IsLast  bool `json:"is_last"`

	InDatabase    bool  `json:"in_database"`
	Janelian      bool  `json:"janelian"`
	Asserted      bool  `json:"asserted"`
	Alumni        bool  `json:"alumni"`
	Validated     bool  `json:"validated"`
	Match         Match `json:"match,omitempty"`
	DuplicateName bool  `json:"duplicate_name,omitempty"`

	ORCID      string   `json:"orcid,omitempty"`
	EmployeeID string   `json:"employeeId,omitempty"`
	Group      string   `json:"group,omitempty"`
	GroupCode  string   `json:"group_code,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	UserID     string   `json:"userIdO365,omitempty"`
	WorkerType string   `json:"workerType,omitempty"`
}

// FromRecordAuthor builds a payload from a schema-adapted author entry.
func FromRecordAuthor(a record.Author) Author {
	out := Author{
		Given:        a.Given,
		Family:       a.Family,
		Name:         a.Name,
		PaperORCID:   a.ORCID,
		ORCIDURL:     a.ORCIDURL,
		Affiliations: a.AffiliationNames(),
		IsFirst:      a.First,
	}
	for _, aff := range a.Affiliations {
		out.RORIDs = append(out.RORIDs, aff.RORIDs...)
	}
	return out
}

// Resolve matches one author against the identity registry and fills
// in the resolution fields. org is the organization name whose literal
// presence in an affiliation string counts as an asserted affiliation.
//
// Signal priority is fixed: unique identifier, then exact name pair,
// then asserted affiliation. The asserted check always sets the
// affiliation flags but never downgrades a unique-identifier match.
func Resolve(ctx context.Context, a *Author, reg identity.Registry, org string) error {
	a.InDatabase = false
	a.Janelian = false
	a.Asserted = false
	a.Alumni = false
	a.Validated = false
	a.Match = MatchNone

	var row *identity.Record
	var err error
	if a.PaperORCID != "" {
		row, err = reg.FindOne(ctx, identity.Filter{ORCID: a.PaperORCID})
		if err != nil {
			return err
		}
		if row != nil {
			a.Match = MatchUniqueID
			if err := markDuplicateName(ctx, a, reg); err != nil {
				return err
			}
			adjust(a, row)
		}
	} else if a.Given != "" && a.Family != "" {
		// An empty given name can never form an exact pair, and a zero
		// filter field would drop the predicate entirely.
		row, err = reg.FindOne(ctx, identity.Filter{Given: a.Given, Family: a.Family})
		if err != nil {
			return err
		}
		if row != nil {
			a.Match = MatchName
			if err := markDuplicateName(ctx, a, reg); err != nil {
				return err
			}
			adjust(a, row)
		}
	}

	for _, aff := range a.Affiliations {
		if !containsOrg(aff, org) {
			continue
		}
		// Re-apply the matched row first so group/tag fields are
		// populated, then let the assertion win the affiliation flags.
		adjust(a, row)
		a.Janelian = true
		a.Asserted = true
		if a.Match != MatchUniqueID {
			a.Match = MatchAsserted
		}
		break
	}
	return nil
}

// markDuplicateName flags authors whose given/family pair is shared by
// more than one identity record, making a bare name match ambiguous.
// A payload missing either name part has no pair to count.
func markDuplicateName(ctx context.Context, a *Author, reg identity.Registry) error {
	if a.Given == "" || a.Family == "" {
		return nil
	}
	n, err := reg.Count(ctx, identity.Filter{Given: a.Given, Family: a.Family})
	if err != nil {
		return err
	}
	a.DuplicateName = n > 1
	return nil
}

// adjust copies a matched identity record onto the payload. Group and
// tag fields only transfer for currently affiliated people.
func adjust(a *Author, row *identity.Record) {
	if row == nil {
		return
	}
	a.ORCID = row.ORCID
	a.InDatabase = true
	if row.EmployeeID != "" {
		a.Validated = true
	}
	a.Janelian = !row.Alumni
	if row.Alumni {
		a.Alumni = true
	}
	if a.Janelian {
		if row.Group != "" {
			a.Group = row.Group
		}
		if row.GroupCode != "" {
			a.GroupCode = row.GroupCode
		}
		if len(row.Affiliations) > 0 {
			a.Tags = row.Affiliations
		}
	}
	if row.EmployeeID != "" {
		a.EmployeeID = row.EmployeeID
	}
	if row.UserID != "" {
		a.UserID = row.UserID
	}
	if row.WorkerType != "" {
		a.WorkerType = row.WorkerType
	}
}
