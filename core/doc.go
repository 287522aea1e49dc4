// Package core provides the Herald SDK client and types for dispatching
// SMS, LMS, MMS, and RCS messages through the Herald messaging API.
//
// # Client and Gateway
//
// The primary entry point is [Client], which wraps a [Gateway] and adds
// response reconciliation, telemetry, and a fluent builder API:
//
//	gw, err := gateway.New(apiKey, apiSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := core.NewClient(gw, core.WithTelemetry(myHook))
//
// # Sending messages
//
// [Client.Send] builds a batch request. One or many messages go through the
// same path, with an optional dispatch time:
//
//	result, err := client.Send(
//	    core.Message{To: "15551230001", From: "15550100", Text: "hello"},
//	    core.Message{To: "15551230002", From: "15550100", Text: "hello"},
//	).ScheduleAt(tomorrow).Execute(ctx)
//
// The provider may accept part of a batch. Partial failure is not an error:
// the result carries the rejected messages for inspection.
//
//	if result.HasFailures() {
//	    for _, f := range result.FailedMessages {
//	        log.Printf("rejected %s: %s", f.To, f.ErrorMessage)
//	    }
//	}
//
// When the provider rejects every message in the batch, Execute returns a
// *[MessageNotReceivedError] carrying the per-message reasons. Because a
// single-message batch has a total of one, a lone rejection surfaces the
// same way. [Client.SendOne] is the thin alternative for callers that want
// a plain receipt and a binary outcome.
//
// # Authentication
//
// Every outgoing request carries an authorization header derived by
// [Signer]: a fresh date and random salt signed with HMAC-SHA256 under the
// account's secret key. Headers are recomputed per request and never
// reused. Credentials are validated once at construction and held as
// [Secret] values that redact themselves in logs and serialized output.
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//   - [ErrInvalidCredentials]: missing API key or secret at construction
//   - [ErrInvalidAPIKey]: the provider rejected the credentials
//   - [ErrBadRequest]: the provider rejected the request as invalid
//   - [ErrFileUpload]: the upload operation was rejected
//   - [ErrMessageNotReceived]: every message in a batch was rejected
//   - [ErrEmptyResponse]: 2xx status with an absent body
//   - [ErrUnknownProvider]: unmapped provider errorCode, carried verbatim
//   - [ErrNetwork], [ErrDecode]: transport and parse failures
//
// Use errors.Is to classify and errors.As to reach the structured payload:
//
//	var nr *core.MessageNotReceivedError
//	if errors.As(err, &nr) {
//	    // inspect nr.Failed
//	}
//
// # Thread Safety
//
// [Client], [Signer], and Gateway implementations are safe for concurrent
// use. [SendBuilder] is NOT thread-safe; each goroutine should build its
// own request. There is no retry, caching, or shared mutable state in the
// core: each call is one synchronous request/response cycle.
package core
