// Package models holds the rate limiting result and response shapes shared by
// the store, service and transport layers.
package models

import "time"

// RateLimitResult reports the outcome of an admission check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is the whole seconds until the oldest recorded request exits
	// the window. Zero when Allowed.
	RetryAfter int
}

// RateLimitExceededResponse is the 429 body.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}
