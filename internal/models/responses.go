package models

import "time"

// TimestampLayout is ISO-8601 in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	// MsgNotFound is the error body of every unmatched route
	MsgNotFound = "not found"
	// MsgInternal is the error body of every unexpected server-side failure
	MsgInternal = "internal server error"
)
