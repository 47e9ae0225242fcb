package identity

import (
	"context"
	"fmt"
	"slices"

	"github.com/janelia-scicomp/biblio/names"
	"github.com/janelia-scicomp/biblio/people"
)

// Lookup-by modes for LookupOne.
const (
	ByORCID      = "orcid"
	ByEmployeeID = "employeeId"
)

// LookupOne finds the single identity record carrying the given
// identifier. Returns nil when no record matches; an unsupported mode
// is an ErrLookupBy error.
func LookupOne(ctx context.Context, reg Registry, val, by string) (*Record, error) {
	switch by {
	case ByORCID:
		return reg.FindOne(ctx, Filter{ORCID: val})
	case ByEmployeeID:
		return reg.FindOne(ctx, Filter{EmployeeID: val})
	default:
		return nil, fmt.Errorf("%w: %q", ErrLookupBy, by)
	}
}

// DirectoryAffiliations derives the affiliation tag list from a
// personnel directory record: supervisory-organization names, then the
// cost-center description (only when the record has no group of its
// own), then managed-team organizations. The result is deduplicated
// and sorted; existing is the starting list and is not modified.
func DirectoryAffiliations(p *people.Person, existing []string, hasGroup bool) []string {
	out := slices.Clone(existing)
	if len(p.Affiliations) > 0 {
		out = nil
		for _, aff := range p.Affiliations {
			out = appendMissing(out, aff.SupOrgName)
		}
	}
	if !hasGroup && p.CCDescr != "" {
		out = appendMissing(out, p.CCDescr)
	}
	for _, team := range p.ManagedTeams {
		out = appendMissing(out, team.SupOrgName)
	}
	slices.Sort(out)
	return out
}

// Enroll creates an identity record from a personnel directory person:
// name combinations, affiliation tags, and directory identifiers.
// Enrolling an employee ID the registry already holds is an ErrExists
// error.
func Enroll(ctx context.Context, reg Registry, p *people.Person) (*Record, error) {
	if p.EmployeeID != "" {
		existing, err := reg.FindOne(ctx, Filter{EmployeeID: p.EmployeeID})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: employeeId %s", ErrExists, p.EmployeeID)
		}
	}

	rec := &Record{
		EmployeeID: p.EmployeeID,
		UserID:     p.UserIDO365,
		WorkerType: p.WorkerType,
	}
	rec.Given, rec.Family = names.Combinations(p.Names(), nil, nil)
	if len(rec.Given) == 0 && len(rec.Family) == 0 {
		return nil, fmt.Errorf("person %+v has no name", p)
	}
	rec.Affiliations = DirectoryAffiliations(p, nil, false)

	id, err := reg.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return rec, nil
}

// Merge folds a directory person into an existing identity record:
// new name variants append, missing identifiers fill in, affiliation
// tags refresh. Returns the patched record.
func Merge(ctx context.Context, reg Registry, rec *Record, p *people.Person) (*Record, error) {
	f := mergeFilter(rec)
	if f.IsZero() {
		return nil, fmt.Errorf("merge target has no identifier")
	}

	patch := Patch{}
	patch.Given, patch.Family = names.Combinations(p.Names(), rec.Given, rec.Family)
	patch.Affiliations = DirectoryAffiliations(p, rec.Affiliations, rec.Group != "")
	if rec.EmployeeID == "" && p.EmployeeID != "" {
		patch.EmployeeID = &p.EmployeeID
	}
	if rec.UserID == "" && p.UserIDO365 != "" {
		patch.UserID = &p.UserIDO365
	}
	if rec.WorkerType == "" && p.WorkerType != "" {
		patch.WorkerType = &p.WorkerType
	}

	if _, err := reg.Update(ctx, f, patch); err != nil {
		return nil, err
	}
	out := *rec
	patch.Apply(&out)
	return &out, nil
}

func mergeFilter(rec *Record) Filter {
	if rec.ORCID != "" {
		return Filter{ORCID: rec.ORCID}
	}
	return Filter{EmployeeID: rec.EmployeeID}
}

func appendMissing(list []string, s string) []string {
	if s == "" || slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
