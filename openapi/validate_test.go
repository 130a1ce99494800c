package openapi

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, data string) *Value {
	t.Helper()
	doc, err := ParseDocument([]byte(data), "doc.json")
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestValidateOK(t *testing.T) {
	doc := mustParse(t, `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`)
	if err := Validate(doc); err != nil {
		t.Errorf("expected valid document, got %v", err)
	}
}

func TestValidateMissingInfo(t *testing.T) {
	doc := mustParse(t, `{"openapi":"3.0.0","paths":{}}`)
	err := Validate(doc)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Missing) != 1 || ve.Missing[0] != "info" {
		t.Errorf("missing = %v, want [info]", ve.Missing)
	}
}

func TestValidateMissingInfoVersionOnly(t *testing.T) {
	doc := mustParse(t, `{"openapi":"3.0.0","info":{"title":"t"},"paths":{}}`)
	err := Validate(doc)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// The violation names info.version specifically, not a generic info failure.
	if len(ve.Missing) != 1 || ve.Missing[0] != "info.version" {
		t.Errorf("missing = %v, want [info.version]", ve.Missing)
	}
}

func TestValidateAggregatesAllFailures(t *testing.T) {
	doc := mustParse(t, `{"info":{}}`)
	err := Validate(doc)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"openapi", "info.title", "info.version", "paths"}
	if len(ve.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", ve.Missing, want)
	}
	for i := range want {
		if ve.Missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, ve.Missing[i], want[i])
		}
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	doc := mustParse(t, `{}`)
	err := Validate(doc)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"openapi", "info", "paths"}
	if len(ve.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", ve.Missing, want)
	}
	for i := range want {
		if ve.Missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, ve.Missing[i], want[i])
		}
	}
}
