package gateway

import (
	"net/http"

	"github.com/petal-labs/herald/core"
)

// Gateway is the HTTP implementation of core.Gateway.
// Gateway is safe for concurrent use.
type Gateway struct {
	config Config
	signer *core.Signer
}

// New creates a Gateway for the given credential pair and options.
// Returns core.ErrInvalidCredentials when either part is missing.
func New(apiKey, apiSecret string, opts ...Option) (*Gateway, error) {
	signer, err := core.NewSigner(apiKey, core.NewSecret(apiSecret))
	if err != nil {
		return nil, err
	}

	cfg := Config{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		ErrorCodes: defaultErrorCodes(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ErrorCodes == nil {
		cfg.ErrorCodes = defaultErrorCodes()
	}

	return &Gateway{config: cfg, signer: signer}, nil
}

// buildHeaders constructs the HTTP headers for one API request.
// The Authorization value is recomputed per call: a fresh date and salt
// go into every signature.
func (g *Gateway) buildHeaders() http.Header {
	headers := make(http.Header)

	headers.Set("Authorization", g.signer.Header().String())
	headers.Set("Content-Type", "application/json")

	for key, values := range g.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

// Compile-time check that Gateway implements core.Gateway.
var _ core.Gateway = (*Gateway)(nil)
