package value

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"float whole", float64(2011), "2011"},
		{"float fractional", 3.5, "3.5"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"json number", json.Number("519"), "519"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%v): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	if got := FirstText([]any{"J of Comparative Neurology"}); got != "J of Comparative Neurology" {
		t.Errorf("FirstText: got %q", got)
	}
	if got := First([]any{}); got != nil {
		t.Errorf("First on empty array: got %v, want nil", got)
	}
	// Bare values pass through so single-valued fields work too.
	if got := FirstText("bare"); got != "bare" {
		t.Errorf("FirstText on bare value: got %q", got)
	}
}

func TestMaps(t *testing.T) {
	var doc map[string]any
	blob := `{"institution": {"name": "bioRxiv"}, "author": [{"family": "Smith"}, {"family": "Jones"}]}`
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		t.Fatal(err)
	}

	// Single object normalizes to a one-element list.
	single := Maps(doc["institution"])
	if len(single) != 1 || Text(single[0]["name"]) != "bioRxiv" {
		t.Errorf("Maps on single object: got %v", single)
	}

	multi := Maps(doc["author"])
	if len(multi) != 2 {
		t.Fatalf("Maps on array: got %d entries, want 2", len(multi))
	}
	if Text(multi[1]["family"]) != "Jones" {
		t.Errorf("Maps array order: got %q", Text(multi[1]["family"]))
	}

	if Maps("not an object") != nil {
		t.Error("Maps on scalar: want nil")
	}
}

func TestStrings(t *testing.T) {
	got := Strings([]any{"a", "", "b", 3})
	want := []string{"a", "b", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strings: got %v, want %v", got, want)
	}
	if got := Strings("solo"); !reflect.DeepEqual(got, []string{"solo"}) {
		t.Errorf("Strings on bare value: got %v", got)
	}
}

func TestCleanSpaces(t *testing.T) {
	in := "Gerald M"
	if got := CleanSpaces(in); got != "Gerald M" {
		t.Errorf("CleanSpaces: got %q, want %q", got, "Gerald M")
	}
	// Thin space and ideographic space normalize too.
	if got := CleanSpaces("a b　c"); got != "a b c" {
		t.Errorf("CleanSpaces unicode separators: got %q", got)
	}
	// Plain strings come back untouched.
	plain := "no change here"
	if got := CleanSpaces(plain); got != plain {
		t.Errorf("CleanSpaces: got %q, want %q", got, plain)
	}
	if strings.ContainsRune(CleanSpaces(in), ' ') {
		t.Error("CleanSpaces left a non-breaking space")
	}
}
