package commands

import (
	"strings"
	"testing"
)

func TestVersionVariables(t *testing.T) {
	// Verify default values are set
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}
}

func TestVersionCommand(t *testing.T) {
	app, stdout, _ := newTestApp(&fakeGateway{}, seededKeystore())

	if err := runApp(t, app, "version"); err != nil {
		t.Fatalf("version error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "herald "+Version) {
		t.Errorf("stdout = %q, want the version line", out)
	}
	if !strings.Contains(out, "go version:") {
		t.Errorf("stdout = %q, want the Go runtime line", out)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	app, stdout, _ := newTestApp(&fakeGateway{}, seededKeystore())

	if err := runApp(t, app, "version", "--json"); err != nil {
		t.Fatalf("version error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, `"version":"`+Version+`"`) {
		t.Errorf("stdout = %q, want JSON version field", out)
	}
}
