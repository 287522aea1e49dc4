// Package gateway implements the HTTP transport boundary of the Herald SDK.
//
// Gateway satisfies [core.Gateway]: every call signs a fresh authorization
// header, performs one JSON request/response cycle against the Herald
// messaging API, and normalizes non-2xx responses into typed core errors.
// Retry, backoff, and timeout policy belong to the injected http.Client.
package gateway
