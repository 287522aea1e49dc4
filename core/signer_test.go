package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func newTestSigner(t *testing.T, apiKey, secret string) *Signer {
	t.Helper()
	s, err := NewSigner(apiKey, NewSecret(secret))
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	return s
}

func TestNewSignerRejectsMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		secret string
	}{
		{"empty api key", "", "secret"},
		{"empty secret", "key", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSigner(tt.apiKey, NewSecret(tt.secret))
			if err != ErrInvalidCredentials {
				t.Errorf("NewSigner() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestSignDeterminism(t *testing.T) {
	s := newTestSigner(t, "NCS-KEY-1", "super-secret")

	first := s.Sign("2026-08-26T10:00:00Z", "salt-1234")
	second := s.Sign("2026-08-26T10:00:00Z", "salt-1234")

	if first.Signature != second.Signature {
		t.Errorf("Sign() not deterministic: %q != %q", first.Signature, second.Signature)
	}
	if first.String() != second.String() {
		t.Errorf("header rendering not deterministic")
	}
}

func TestSignMatchesHMAC(t *testing.T) {
	s := newTestSigner(t, "NCS-KEY-1", "super-secret")
	date := "2026-08-26T10:00:00Z"
	salt := "f1e2d3c4"

	header := s.Sign(date, salt)

	mac := hmac.New(sha256.New, []byte("super-secret"))
	mac.Write([]byte(date + salt))
	want := hex.EncodeToString(mac.Sum(nil))

	if header.Signature != want {
		t.Errorf("Signature = %q, want %q", header.Signature, want)
	}
}

func TestSignSecretSensitivity(t *testing.T) {
	a := newTestSigner(t, "NCS-KEY-1", "secret-a")
	b := newTestSigner(t, "NCS-KEY-1", "secret-b")

	sigA := a.Sign("2026-08-26T10:00:00Z", "salt-1234").Signature
	sigB := b.Sign("2026-08-26T10:00:00Z", "salt-1234").Signature

	if sigA == sigB {
		t.Errorf("distinct secrets produced identical signatures: %q", sigA)
	}
}

func TestAuthHeaderString(t *testing.T) {
	s := newTestSigner(t, "NCS-KEY-1", "super-secret")
	header := s.Sign("2026-08-26T10:00:00Z", "salt-1234")

	got := header.String()
	prefix := "HMAC-SHA256 apiKey=NCS-KEY-1, date=2026-08-26T10:00:00Z, salt=salt-1234, signature="
	if !strings.HasPrefix(got, prefix) {
		t.Errorf("header = %q, want prefix %q", got, prefix)
	}
	if len(got) != len(prefix)+64 {
		t.Errorf("signature should be 64 hex chars, header = %q", got)
	}
}

func TestHeaderFreshPerCall(t *testing.T) {
	s := newTestSigner(t, "NCS-KEY-1", "super-secret")

	first := s.Header()
	second := s.Header()

	if first.Salt == second.Salt {
		t.Errorf("Header() reused salt %q across calls", first.Salt)
	}
	if first.APIKey != "NCS-KEY-1" {
		t.Errorf("APIKey = %q, want %q", first.APIKey, "NCS-KEY-1")
	}
}
