package openapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestImportFromFileJSON(t *testing.T) {
	path := writeFixture(t, "spec.json", minimalSpecJSON)
	spec, err := ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if spec.Info.Title != "Pets" || len(spec.Endpoints) != 1 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestImportFromFileYAML(t *testing.T) {
	path := writeFixture(t, "spec.yaml", "openapi: 3.0.0\ninfo:\n  title: Pets\n  version: 1.2.3\npaths:\n  /pets:\n    get:\n      responses: {}\n")
	spec, err := ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if spec.Info.Title != "Pets" || spec.Endpoints[0].Method != "GET" {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestImportFromFileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	_, err := ImportFromFile(missing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("expected ImportError, got %T", err)
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Fatal("must not be a ValidationError")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("message does not name the path: %q", err.Error())
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("original cause lost from chain")
	}
}

func TestImportFromFileParseFailurePropagates(t *testing.T) {
	path := writeFixture(t, "bad.json", "{nope")
	_, err := ImportFromFile(path)
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("expected ImportError, got %T", err)
	}
	if ie.Msg != "failed to parse document" {
		t.Errorf("parse failure rewrapped: %q", ie.Msg)
	}
}

func TestImportFromFileValidationFailurePropagates(t *testing.T) {
	path := writeFixture(t, "invalid.json", `{"openapi":"3.0.0"}`)
	_, err := ImportFromFile(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"info", "paths"}
	if len(ve.Missing) != len(want) || ve.Missing[0] != want[0] || ve.Missing[1] != want[1] {
		t.Errorf("missing = %v, want %v", ve.Missing, want)
	}
}

func TestImportFromURLJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(minimalSpecJSON))
	}))
	defer srv.Close()

	spec, err := ImportFromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ImportFromURL failed: %v", err)
	}
	if spec.Info.Title != "Pets" || len(spec.Endpoints) != 1 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestImportFromURLYAMLContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write([]byte("openapi: 3.0.0\ninfo:\n  title: Pets\n  version: \"1\"\npaths: {}\n"))
	}))
	defer srv.Close()

	spec, err := ImportFromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ImportFromURL failed for YAML content type: %v", err)
	}
	if spec.Info.Title != "Pets" {
		t.Errorf("unexpected info: %+v", spec.Info)
	}
}

func TestImportFromURLNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ImportFromURL(context.Background(), srv.URL)
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("expected ImportError, got %T", err)
	}
	if !strings.Contains(err.Error(), srv.URL) {
		t.Errorf("message does not name the URL: %q", err.Error())
	}
}

func TestImportFromURLConnectionRefused(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := ImportFromURL(context.Background(), url)
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("expected ImportError, got %T", err)
	}
	if ie.Unwrap() == nil {
		t.Error("transport cause lost")
	}
}

func TestImportFromURLValidationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"info":{"title":"t","version":"1"}}`))
	}))
	defer srv.Close()

	_, err := ImportFromURL(context.Background(), srv.URL)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
