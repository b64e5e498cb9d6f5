// Package client wraps the board server's JSON-over-HTTP API in typed
// methods. All requests carry a bearer token when one is configured;
// mutating requests also carry a fresh Idempotency-Key header. Responses
// map uniformly: 401 to AuthError, other non-2xx to APIError with the
// raw body text, 204 to success without a payload, and remaining 2xx to
// a JSON decode of the expected type.
package client
