package names

import (
	"reflect"
	"testing"
)

func TestExpandInitials(t *testing.T) {
	tests := []struct {
		name  string
		given []string
		want  []string
	}{
		{
			"middle initial gains stripped form",
			[]string{"Gerald M."},
			[]string{"Gerald M.", "Gerald M"},
		},
		{
			"packed initials gain spaced form",
			[]string{"G.M."},
			[]string{"G.M.", "G M"},
		},
		{
			"canonical two-initial form left alone",
			[]string{"G. M."},
			[]string{"G. M."},
		},
		{
			"plain name untouched",
			[]string{"Gerald"},
			[]string{"Gerald"},
		},
		{
			"existing variant not duplicated",
			[]string{"Gerald M.", "Gerald M"},
			[]string{"Gerald M.", "Gerald M"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandInitials(tt.given)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandInitials(%v): got %v, want %v", tt.given, got, tt.want)
			}
		})
	}
}

func TestExpandInitialsIdempotent(t *testing.T) {
	given := []string{"Gerald M.", "G.M.", "A. B."}
	once := ExpandInitials(given)
	twice := ExpandInitials(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second expansion changed the list: %v vs %v", once, twice)
	}
}

func TestExpandInitialsPure(t *testing.T) {
	given := []string{"Gerald M."}
	ExpandInitials(given)
	if !reflect.DeepEqual(given, []string{"Gerald M."}) {
		t.Errorf("input mutated: %v", given)
	}
}

func TestCombinations(t *testing.T) {
	d := Directory{
		First:          "Gerald",
		FirstPreferred: "Gerry",
		Middle:         "Martin",
		Last:           "Meissner",
	}
	g, f := Combinations(d, []string{"Gerald"}, []string{"Meissner"})

	wantGiven := []string{
		"Gerald", "Gerry",
		"Gerald M", "Gerald M.",
		"Gerry M", "Gerry M.",
	}
	if !reflect.DeepEqual(g, wantGiven) {
		t.Errorf("given: got %v, want %v", g, wantGiven)
	}
	if !reflect.DeepEqual(f, []string{"Meissner"}) {
		t.Errorf("family: got %v", f)
	}
}

func TestCombinationsSkipsEmptyAndPresent(t *testing.T) {
	d := Directory{Last: "Meissner", LastPreferred: ""}
	g, f := Combinations(d, []string{"Gerald"}, []string{"Meissner"})
	if !reflect.DeepEqual(g, []string{"Gerald"}) {
		t.Errorf("given: got %v", g)
	}
	// Already-present family name is not appended again.
	if !reflect.DeepEqual(f, []string{"Meissner"}) {
		t.Errorf("family: got %v", f)
	}
}

func TestCombinationsMultiTokenGivenSkipped(t *testing.T) {
	// Middle-initial combinations only apply to single-token given names.
	d := Directory{Middle: "Martin"}
	g, _ := Combinations(d, []string{"Gerald M."}, nil)
	want := []string{"Gerald M.", "Gerald M"}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("given: got %v, want %v", g, want)
	}
}
