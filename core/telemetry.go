package core

import "time"

// TelemetryHook receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, tracing, etc.
//
// # Security Considerations
//
// Event types are designed to NEVER include sensitive data:
//   - Credentials are NEVER included (held separately as core.Secret)
//   - Recipient numbers and message text are NEVER included
//   - Only operational metadata is exposed (operation, timing, counts)
//
// This design ensures that telemetry data can be safely logged to disk,
// sent to external monitoring systems, and stored long-term for debugging.
//
// If extending this interface, maintain these properties. Never add fields
// that could contain credentials, phone numbers, or message content.
type TelemetryHook interface {
	// OnRequestStart is called when a request to the provider begins.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request to the provider completes.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Op       string    // operation identifier, e.g. "messages.sendMany"
	Messages int       // messages in the request, 0 for non-send operations
	Start    time.Time // when the request started
}

// RequestEndEvent contains metadata about a completed request.
//
// The Err field carries the SDK's typed error values, not raw provider
// response bodies which might include recipient data.
type RequestEndEvent struct {
	Op       string    // operation identifier
	Messages int       // messages in the request
	Start    time.Time // when the request started
	End      time.Time // when the request completed
	Failed   int       // messages the provider rejected (batch sends only)
	Err      error     // error if the request failed, nil on success
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// Use this as a default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

// Compile-time check that NoopTelemetryHook implements TelemetryHook.
var _ TelemetryHook = NoopTelemetryHook{}
