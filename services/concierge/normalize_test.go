package concierge

import (
	"reflect"
	"testing"
)

func TestNormalizeEmptyObject(t *testing.T) {
	got := Normalize(map[string]any{})
	want := map[string]any{
		"plan":              []any{},
		"activities":        []any{},
		"restaurants":       []any{},
		"packing_checklist": []any{"light jacket"},
	}
	if !reflect.DeepEqual(map[string]any(got), want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(map[string]any{})
	twice := Normalize(map[string]any(once))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize not idempotent: %v vs %v", once, twice)
	}
}

func TestNormalizeKeepsPresentKeys(t *testing.T) {
	// Present keys pass through untouched, even with the wrong type.
	got := Normalize(map[string]any{"plan": "oops"})
	if got["plan"] != "oops" {
		t.Errorf("present key was rewritten: %v", got["plan"])
	}
	if _, ok := got["restaurants"]; !ok {
		t.Error("missing key was not defaulted")
	}
}
