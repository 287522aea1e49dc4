package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/petal-labs/herald/core"
)

var authHeaderRe = regexp.MustCompile(
	`^HMAC-SHA256 apiKey=([^,]+), date=([^,]+), salt=([^,]+), signature=([0-9a-f]{64})$`)

func newTestGateway(t *testing.T, serverURL string, opts ...Option) *Gateway {
	t.Helper()
	g, err := New("test-key", "test-secret", append([]Option{WithBaseURL(serverURL)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestNewRejectsMissingCredentials(t *testing.T) {
	if _, err := New("", "secret"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("New(\"\", secret) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := New("key", ""); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("New(key, \"\") error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthorizationHeaderVerifiable(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(core.Balance{Balance: 1})
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL)
	if _, err := g.GetBalance(context.Background()); err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}

	m := authHeaderRe.FindStringSubmatch(captured)
	if m == nil {
		t.Fatalf("Authorization = %q, does not match credential format", captured)
	}
	if m[1] != "test-key" {
		t.Errorf("apiKey = %q, want %q", m[1], "test-key")
	}

	// The server must be able to re-derive the signature from the header fields.
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte(m[2] + m[3]))
	if want := hex.EncodeToString(mac.Sum(nil)); m[4] != want {
		t.Errorf("signature = %q, want re-derived %q", m[4], want)
	}
}

func TestAuthorizationHeaderFreshPerRequest(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(core.Balance{})
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL)
	for i := 0; i < 2; i++ {
		if _, err := g.GetBalance(context.Background()); err != nil {
			t.Fatalf("GetBalance() error = %v", err)
		}
	}

	if len(headers) != 2 {
		t.Fatalf("requests = %d, want 2", len(headers))
	}
	if headers[0] == headers[1] {
		t.Errorf("Authorization header reused across requests: %q", headers[0])
	}
}

func TestExtraHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Trace-Id") != "t-123" {
			t.Errorf("X-Trace-Id = %q, want %q", r.Header.Get("X-Trace-Id"), "t-123")
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(core.Balance{})
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL, WithHeader("X-Trace-Id", "t-123"))
	if _, err := g.GetBalance(context.Background()); err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	g := newTestGateway(t, server.URL)
	_, err := g.GetBalance(context.Background())
	if !errors.Is(err, core.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}
