package core

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestNewSecret(t *testing.T) {
	secret := NewSecret("my-api-secret")
	if secret.value != "my-api-secret" {
		t.Errorf("NewSecret() value = %q, want %q", secret.value, "my-api-secret")
	}
}

func TestSecretString(t *testing.T) {
	secret := NewSecret("hsk-abc123xyz")
	got := secret.String()
	want := "[REDACTED]"
	if got != want {
		t.Errorf("Secret.String() = %q, want %q", got, want)
	}
}

func TestSecretGoString(t *testing.T) {
	secret := NewSecret("hsk-abc123xyz")
	got := secret.GoString()
	want := "core.Secret{[REDACTED]}"
	if got != want {
		t.Errorf("Secret.GoString() = %q, want %q", got, want)
	}
}

func TestSecretMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Key Secret `json:"key"`
	}{Key: NewSecret("hsk-abc123xyz")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"key":"[REDACTED]"}`
	if string(payload) != want {
		t.Errorf("json.Marshal() = %s, want %s", payload, want)
	}
}

func TestSecretMarshalText(t *testing.T) {
	secret := NewSecret("hsk-abc123xyz")
	got, err := secret.MarshalText()
	if err != nil {
		t.Fatalf("Secret.MarshalText() error = %v", err)
	}
	if string(got) != "[REDACTED]" {
		t.Errorf("Secret.MarshalText() = %s, want [REDACTED]", got)
	}
}

func TestSecretFormatting(t *testing.T) {
	secret := NewSecret("hsk-abc123xyz")

	if got := fmt.Sprintf("%v", secret); got != "[REDACTED]" {
		t.Errorf("%%v = %q, want [REDACTED]", got)
	}
	if got := fmt.Sprintf("%#v", secret); got != "core.Secret{[REDACTED]}" {
		t.Errorf("%%#v = %q, want core.Secret{[REDACTED]}", got)
	}
}

func TestSecretExpose(t *testing.T) {
	value := "hsk-abc123xyz"
	secret := NewSecret(value)
	if secret.Expose() != value {
		t.Errorf("Secret.Expose() = %q, want %q", secret.Expose(), value)
	}
}

func TestSecretIsEmpty(t *testing.T) {
	if !NewSecret("").IsEmpty() {
		t.Errorf("IsEmpty() = false for empty secret")
	}
	if NewSecret("x").IsEmpty() {
		t.Errorf("IsEmpty() = true for non-empty secret")
	}
}
