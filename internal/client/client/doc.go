// Package client talks to the credit-transfer REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Register, the faculty review endpoints, the student notification
//     endpoints, report download and Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that injects the bearer
//     token obtained from a TokenSource and maps HTTP status codes to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Any other non-2xx
// answer is returned as *StatusError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
