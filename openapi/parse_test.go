package openapi

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDocumentJSON(t *testing.T) {
	data := []byte(`{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`)
	doc, err := ParseDocument(data, "spec.json")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if !doc.IsObject() {
		t.Fatalf("expected object root, got %v", doc.Kind())
	}
	v, ok := doc.Field("openapi")
	if !ok || v.Str() != "3.0.0" {
		t.Errorf("openapi field = %v", v)
	}
}

func TestParseDocumentYAML(t *testing.T) {
	data := []byte("openapi: 3.0.0\ninfo:\n  title: t\n  version: \"1\"\npaths: {}\n")
	doc, err := ParseDocument(data, "spec.yaml")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	v, ok := doc.Field("openapi")
	if !ok || v.Str() != "3.0.0" {
		t.Errorf("openapi field = %v", v)
	}
}

func TestParseDocumentExtensionSelection(t *testing.T) {
	yamlData := []byte("a: 1\n")
	// .YML upper-case still selects YAML
	doc, err := ParseDocument(yamlData, "SPEC.YML")
	if err != nil {
		t.Fatalf("upper-case extension not handled: %v", err)
	}
	if v, ok := doc.Field("a"); !ok || v.Number() != json.Number("1") {
		t.Errorf("unexpected a: %v", v)
	}

	// a .txt path parses as JSON, so YAML content fails
	if _, err := ParseDocument(yamlData, "spec.txt"); err == nil {
		t.Error("expected JSON parse failure for YAML content under .txt path")
	}
}

func TestParseDocumentPreservesObjectOrder(t *testing.T) {
	data := []byte(`{"zebra":1,"alpha":2,"mike":3}`)
	doc, err := ParseDocument(data, "spec.json")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	keys := doc.Keys()
	want := []string{"zebra", "alpha", "mike"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParseDocumentNumberLiterals(t *testing.T) {
	data := []byte(`{"n":1.50,"big":12345678901234567890}`)
	doc, err := ParseDocument(data, "spec.json")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	n, _ := doc.Field("n")
	if n.Number() != json.Number("1.50") {
		t.Errorf("number literal reformatted: %v", n.Number())
	}
	out, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(out) != `{"n":1.50,"big":12345678901234567890}` {
		t.Errorf("round trip changed document: %s", out)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
		path string
	}{
		{"bad json", `{"a":`, "spec.json"},
		{"trailing data", `{} {}`, "spec.json"},
		{"bad yaml", "a: [b\n", "spec.yaml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tc.data), tc.path)
			if err == nil {
				t.Fatal("expected parse error, got nil")
			}
			var ie *ImportError
			if !errors.As(err, &ie) {
				t.Fatalf("expected ImportError, got %T", err)
			}
			if ie.Msg != "failed to parse document" {
				t.Errorf("unexpected message: %q", ie.Msg)
			}
			if ie.Source != tc.path {
				t.Errorf("source = %q, want %q", ie.Source, tc.path)
			}
			if ie.Unwrap() == nil {
				t.Error("cause chain lost")
			}
		})
	}
}

func TestParseYAMLScalarTags(t *testing.T) {
	data := []byte("s: text\nb: true\ni: 42\nf: 1.5\nn: null\n")
	doc, err := ParseDocument(data, "spec.yaml")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if v, _ := doc.Field("s"); v.Kind() != KindString {
		t.Errorf("s kind = %v", v.Kind())
	}
	if v, _ := doc.Field("b"); v.Kind() != KindBool || !v.Bool() {
		t.Errorf("b = %v", v)
	}
	if v, _ := doc.Field("i"); v.Kind() != KindNumber || v.Number() != json.Number("42") {
		t.Errorf("i = %v", v)
	}
	if v, _ := doc.Field("f"); v.Kind() != KindNumber {
		t.Errorf("f kind = %v", v.Kind())
	}
	if v, _ := doc.Field("n"); v.Kind() != KindNull {
		t.Errorf("n kind = %v", v.Kind())
	}
}

func TestValueText(t *testing.T) {
	if String("x").Text() != "x" {
		t.Error("string text")
	}
	if Number(json.Number("2.0")).Text() != "2.0" {
		t.Error("number text")
	}
	if Bool(true).Text() != "true" || Bool(false).Text() != "false" {
		t.Error("bool text")
	}
	if Object().Text() != "" {
		t.Error("object text should be empty")
	}
}
