package commands

import (
	"strings"
	"testing"
)

func TestKeysSetPipedInput(t *testing.T) {
	ks := &memKeystore{entries: map[string]string{}}
	app, stdout, _ := newTestApp(&fakeGateway{}, ks)
	app.stdin = strings.NewReader("NCS-KEY-1\nNCS-SECRET-1\n")

	if err := runApp(t, app, "keys", "set", "staging"); err != nil {
		t.Fatalf("keys set error = %v", err)
	}

	if got := ks.entries["staging.api_key"]; got != "NCS-KEY-1" {
		t.Errorf("stored api_key = %q, want NCS-KEY-1", got)
	}
	if got := ks.entries["staging.api_secret"]; got != "NCS-SECRET-1" {
		t.Errorf("stored api_secret = %q, want NCS-SECRET-1", got)
	}
	if !strings.Contains(stdout.String(), "stored successfully") {
		t.Errorf("stdout = %q, want confirmation", stdout.String())
	}
}

func TestKeysSetEmptyKey(t *testing.T) {
	app, _, _ := newTestApp(&fakeGateway{}, &memKeystore{entries: map[string]string{}})
	app.stdin = strings.NewReader("\n\n")

	if err := runApp(t, app, "keys", "set", "staging"); err == nil {
		t.Fatal("empty API key should be rejected")
	}
}

func TestKeysList(t *testing.T) {
	app, stdout, _ := newTestApp(&fakeGateway{}, seededKeystore())

	if err := runApp(t, app, "keys", "list"); err != nil {
		t.Fatalf("keys list error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "default.api_key") || !strings.Contains(out, "default.api_secret") {
		t.Errorf("stdout = %q, want both entry names", out)
	}
	if strings.Contains(out, "test-secret") {
		t.Errorf("stdout = %q, must never show stored values", out)
	}
}

func TestKeysListEmpty(t *testing.T) {
	app, stdout, _ := newTestApp(&fakeGateway{}, &memKeystore{entries: map[string]string{}})

	if err := runApp(t, app, "keys", "list"); err != nil {
		t.Fatalf("keys list error = %v", err)
	}

	if !strings.Contains(stdout.String(), "No credentials stored.") {
		t.Errorf("stdout = %q, want empty notice", stdout.String())
	}
}

func TestKeysDelete(t *testing.T) {
	ks := seededKeystore()
	app, stdout, _ := newTestApp(&fakeGateway{}, ks)

	if err := runApp(t, app, "keys", "delete", "default"); err != nil {
		t.Fatalf("keys delete error = %v", err)
	}

	if len(ks.entries) != 0 {
		t.Errorf("entries = %v, want empty keystore", ks.entries)
	}
	if !strings.Contains(stdout.String(), "deleted") {
		t.Errorf("stdout = %q, want confirmation", stdout.String())
	}
}

func TestKeysDeleteUnknownProfile(t *testing.T) {
	app, _, _ := newTestApp(&fakeGateway{}, &memKeystore{entries: map[string]string{}})

	err := runApp(t, app, "keys", "delete", "ghost")
	if err == nil {
		t.Fatal("deleting an unknown profile should fail")
	}
	if !strings.Contains(err.Error(), "no credentials stored") {
		t.Errorf("error = %v, want 'no credentials stored'", err)
	}
}
