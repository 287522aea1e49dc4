package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuthScheme is the authorization scheme name the provider verifies against.
const AuthScheme = "HMAC-SHA256"

// AuthHeader is the derived credential attached to every outgoing request.
// A fresh value is computed per request; it is never cached or reused.
type AuthHeader struct {
	APIKey    string
	Date      string
	Salt      string
	Signature string
}

// String renders the header in the provider's credential format.
// Every field is required server-side to re-derive and verify the signature.
func (h AuthHeader) String() string {
	return fmt.Sprintf("%s apiKey=%s, date=%s, salt=%s, signature=%s",
		AuthScheme, h.APIKey, h.Date, h.Salt, h.Signature)
}

// Signer derives per-request authentication headers from a fixed credential
// pair. Signer holds no mutable state and is safe for concurrent use.
type Signer struct {
	apiKey string
	secret Secret
}

// NewSigner creates a Signer for the given credential pair.
// Returns ErrInvalidCredentials when either part is missing.
func NewSigner(apiKey string, secret Secret) (*Signer, error) {
	if apiKey == "" || secret.IsEmpty() {
		return nil, ErrInvalidCredentials
	}
	return &Signer{apiKey: apiKey, secret: secret}, nil
}

// Sign computes the header for a fixed date and salt.
// The computation is pure: identical inputs produce identical signatures.
func (s *Signer) Sign(date, salt string) AuthHeader {
	mac := hmac.New(sha256.New, []byte(s.secret.Expose()))
	mac.Write([]byte(date + salt))
	return AuthHeader{
		APIKey:    s.apiKey,
		Date:      date,
		Salt:      salt,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}

// Header computes a header for the current wall clock with a fresh random
// salt. The salt prevents signature replay across requests.
func (s *Signer) Header() AuthHeader {
	date := time.Now().UTC().Format(time.RFC3339)
	return s.Sign(date, uuid.NewString())
}
