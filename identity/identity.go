// Package identity models the registry of known individuals and the
// operations the resolver and enrollment flows perform against it.
//
// An identity record carries ordered lists of known given and family
// name spellings; matching checks membership in those lists, not string
// equality, because one person appears under many orthographic forms
// across citation registries. The registry itself is an external store
// behind the Registry interface, with in-memory and Postgres
// implementations in this package.
package identity

import "slices"

// Record is one known individual in the identity registry.
type Record struct {
	ID string `json:"-"`

	// Given and Family are ordered, duplicate-free lists of known
	// name spellings. Insertion order is preserved; new variants
	// append.
	Given  []string `json:"given"`
	Family []string `json:"family"`

	ORCID      string `json:"orcid,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`

	Group     string `json:"group,omitempty"`
	GroupCode string `json:"group_code,omitempty"`

	// Affiliations are supervisory-organization tags, kept sorted.
	Affiliations []string `json:"affiliations,omitempty"`

	// Alumni marks a person no longer affiliated with the organization.
	Alumni bool `json:"alumni,omitempty"`

	UserID     string `json:"userIdO365,omitempty"`
	WorkerType string `json:"workerType,omitempty"`
}

// Filter selects identity records by equality or membership predicates.
// Zero-valued fields are ignored. Given and Family test membership in
// the record's name lists; the In variants match any of the supplied
// candidates.
type Filter struct {
	ORCID      string
	EmployeeID string
	Given      string
	Family     string
	GivenIn    []string
	FamilyIn   []string
}

// Match reports whether a record satisfies every set predicate.
func (f Filter) Match(r *Record) bool {
	if f.ORCID != "" && r.ORCID != f.ORCID {
		return false
	}
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Given != "" && !slices.Contains(r.Given, f.Given) {
		return false
	}
	if f.Family != "" && !slices.Contains(r.Family, f.Family) {
		return false
	}
	if len(f.GivenIn) > 0 && !containsAny(r.Given, f.GivenIn) {
		return false
	}
	if len(f.FamilyIn) > 0 && !containsAny(r.Family, f.FamilyIn) {
		return false
	}
	return true
}

// IsZero reports whether the filter has no predicates. Stores reject
// zero filters on writes to avoid patching every record.
func (f Filter) IsZero() bool {
	return f.ORCID == "" && f.EmployeeID == "" && f.Given == "" &&
		f.Family == "" && len(f.GivenIn) == 0 && len(f.FamilyIn) == 0
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		if slices.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// Patch is a partial update to an identity record. Nil pointer fields
// and nil slices are left untouched; slices replace wholesale.
type Patch struct {
	Given        []string
	Family       []string
	Affiliations []string
	ORCID        *string
	EmployeeID   *string
	Group        *string
	GroupCode    *string
	UserID       *string
	WorkerType   *string
	Alumni       *bool
}

// Apply writes the patch onto a record.
func (p Patch) Apply(r *Record) {
	if p.Given != nil {
		r.Given = p.Given
	}
	if p.Family != nil {
		r.Family = p.Family
	}
	if p.Affiliations != nil {
		r.Affiliations = p.Affiliations
	}
	if p.ORCID != nil {
		r.ORCID = *p.ORCID
	}
	if p.EmployeeID != nil {
		r.EmployeeID = *p.EmployeeID
	}
	if p.Group != nil {
		r.Group = *p.Group
	}
	if p.GroupCode != nil {
		r.GroupCode = *p.GroupCode
	}
	if p.UserID != nil {
		r.UserID = *p.UserID
	}
	if p.WorkerType != nil {
		r.WorkerType = *p.WorkerType
	}
	if p.Alumni != nil {
		r.Alumni = *p.Alumni
	}
}

// fields returns the patch as a field map, for stores that merge
// documents (the Postgres JSONB store).
func (p Patch) fields() map[string]any {
	m := make(map[string]any)
	if p.Given != nil {
		m["given"] = p.Given
	}
	if p.Family != nil {
		m["family"] = p.Family
	}
	if p.Affiliations != nil {
		m["affiliations"] = p.Affiliations
	}
	if p.ORCID != nil {
		m["orcid"] = *p.ORCID
	}
	if p.EmployeeID != nil {
		m["employeeId"] = *p.EmployeeID
	}
	if p.Group != nil {
		m["group"] = *p.Group
	}
	if p.GroupCode != nil {
		m["group_code"] = *p.GroupCode
	}
	if p.UserID != nil {
		m["userIdO365"] = *p.UserID
	}
	if p.WorkerType != nil {
		m["workerType"] = *p.WorkerType
	}
	if p.Alumni != nil {
		m["alumni"] = *p.Alumni
	}
	return m
}
