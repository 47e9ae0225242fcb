package resolve

import (
	"context"
	"strings"

	"github.com/janelia-scicomp/biblio/identity"
)

// Affiliated reports the organization or project team an author belongs
// to, or "" when no signal applies.
//
// Signals, in order: an affiliation string containing the organization
// name, an organization identifier in the author's ROR list, a project
// map hit on the bare display name, and finally full identity
// resolution. Resolution counts only when the author is in the registry
// and not alumni. Authors carrying only a bare display name are decided
// entirely by the project map.
func Affiliated(ctx context.Context, a *Author, reg identity.Registry, projects identity.ProjectMap, org, orgROR string) (string, error) {
	for _, aff := range a.Affiliations {
		if containsOrg(aff, org) {
			return org, nil
		}
	}
	for _, ror := range a.RORIDs {
		if ror == orgROR {
			return org, nil
		}
	}
	if a.Name != "" {
		if project, ok := projects.Lookup(a.Name); ok {
			return project, nil
		}
		return "", nil
	}
	if reg == nil {
		return "", nil
	}
	if err := Resolve(ctx, a, reg, org); err != nil {
		return "", err
	}
	if a.InDatabase && !a.Alumni {
		return org, nil
	}
	return "", nil
}

func containsOrg(affiliation, org string) bool {
	return org != "" && strings.Contains(affiliation, org)
}
