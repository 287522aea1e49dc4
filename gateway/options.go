package gateway

import "net/http"

// Config holds configuration for the Gateway.
type Config struct {
	// BaseURL is the API base URL. Defaults to https://api.herald.dev
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header

	// ErrorCodes maps provider errorCode values to core sentinel errors.
	// Codes missing from the map surface as core.ErrUnknownProvider with
	// the original code and message intact. The provider's code list is
	// not assumed complete; extend the mapping with WithErrorCode.
	ErrorCodes map[string]error
}

// DefaultBaseURL is the default Herald API base URL.
const DefaultBaseURL = "https://api.herald.dev"

// Option configures the Gateway.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithErrorCode maps a provider errorCode to a sentinel error,
// overriding or extending the default classification table.
func WithErrorCode(code string, sentinel error) Option {
	return func(c *Config) {
		if c.ErrorCodes == nil {
			c.ErrorCodes = make(map[string]error)
		}
		c.ErrorCodes[code] = sentinel
	}
}
