// Package names derives equivalent orthographic forms of personal names.
//
// Identity matching checks membership of a citation's given name in the
// identity record's known-name list, so the list must hold every form a
// registry might emit: "Gerald M.", "Gerald M", "G. M.", "G M". The
// functions here expand a name list with those variants, preserving
// insertion order and never inserting duplicates. All functions are pure;
// callers replace their lists with the returned ones.
package names

import (
	"regexp"
	"strings"
)

var (
	// canonical two-initial form, e.g. "G. M."
	twoInitials = regexp.MustCompile(`[A-Za-z]\. [A-Za-z]\.$`)
	// packed two-initial form, e.g. "G.M."
	packedInitials = regexp.MustCompile(`[A-Za-z]\.[A-Za-z]\.$`)
	// trailing middle initial, e.g. "Gerald M."
	middleInitial = regexp.MustCompile(` [A-Za-z]\.$`)
)

// ExpandInitials returns the given-name list extended with derived
// initial forms: "G.M." gains "G M", "Gerald M." gains "Gerald M".
// Names already in the canonical "G. M." form are left alone. The
// result is duplicate-free and the function is idempotent.
func ExpandInitials(given []string) []string {
	out := clone(given)
	for _, first := range given {
		if twoInitials.MatchString(first) {
			continue
		}
		if packedInitials.MatchString(first) {
			out = appendMissing(out, strings.TrimSpace(strings.ReplaceAll(first, ".", " ")))
		} else if middleInitial.MatchString(first) {
			out = appendMissing(out, strings.TrimRight(first, "."))
		}
	}
	return out
}

// Directory holds the name fields a personnel directory record carries.
// Preferred forms are distinct entries; both are candidates.
type Directory struct {
	First           string
	FirstPreferred  string
	Middle          string
	MiddlePreferred string
	Last            string
	LastPreferred   string
}

// Combinations merges directory-sourced names into the given/family
// lists and expands initial forms. Middle names contribute "First M"
// and "First M." combinations for every single-token given name.
// Returns new lists; the inputs are not modified.
func Combinations(d Directory, given, family []string) (g, f []string) {
	g = clone(given)
	f = clone(family)

	for _, source := range []string{d.First, d.FirstPreferred} {
		if source != "" {
			g = appendMissing(g, source)
		}
	}
	for _, source := range []string{d.Last, d.LastPreferred} {
		if source != "" {
			f = appendMissing(f, source)
		}
	}
	for _, source := range []string{d.Middle, d.MiddlePreferred} {
		if source == "" {
			continue
		}
		initial := string([]rune(source)[0])
		// Range over a snapshot: combinations of combinations are not wanted.
		for _, first := range clone(g) {
			if strings.Contains(first, " ") {
				continue
			}
			combo := first + " " + initial
			g = appendMissing(g, combo)
			g = appendMissing(g, combo+".")
		}
	}

	return ExpandInitials(g), f
}

func clone(list []string) []string {
	return append([]string(nil), list...)
}

func appendMissing(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
