package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Atomic-Germ/mcp-api-consumer/utils"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	utils.SetUserOutput(&buf)
	defer utils.SetUserOutput(os.Stdout)
	f()
	return buf.String()
}

const testSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Widgets", "version": "2.0.0"},
  "paths": {
    "/widgets": {
      "get": {"operationId": "listWidgets", "responses": {"200": {"description": "ok"}}}
    }
  }
}`

func writeTestSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.json")
	if err := os.WriteFile(path, []byte(testSpec), 0644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestRootCommandStructure(t *testing.T) {
	root := NewRootCmd()

	want := []string{"serve", "mcp", "metadata", "import", "request", "endpoints", "describe", "document", "guide"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q missing from root", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil || root.PersistentFlags().Lookup("debug") == nil {
		t.Error("persistent flags missing")
	}
}

func TestImportAndExploreCommands(t *testing.T) {
	root := NewRootCmd()
	path := writeTestSpec(t)

	root.SetArgs([]string{"import", path})
	out := captureOutput(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("import failed: %v", err)
		}
	})
	if !strings.Contains(out, "Widgets") {
		t.Errorf("import output = %q", out)
	}

	root.SetArgs([]string{"endpoints", path})
	out = captureOutput(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("endpoints failed: %v", err)
		}
	})
	if !strings.Contains(out, "listWidgets") {
		t.Errorf("endpoints output = %q", out)
	}

	root.SetArgs([]string{"document", path})
	out = captureOutput(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("document failed: %v", err)
		}
	})
	if !strings.Contains(out, "# Widgets") {
		t.Errorf("document output = %q", out)
	}
}

func TestEndpointsWithoutSourceFails(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"endpoints"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err == nil {
		t.Error("expected error when no source is given")
	}
}

func TestGuideCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"guide"})
	out := captureOutput(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("guide failed: %v", err)
		}
	})
	if !strings.Contains(out, "apiconsumer_import_spec") {
		t.Errorf("guide output = %q", out)
	}
}

func TestMetadataCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"metadata"})
	if err := root.Execute(); err != nil {
		t.Fatalf("metadata failed: %v", err)
	}
}
