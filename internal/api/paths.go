// Package api provides the HTTP client for the PDF Q&A backend.
package api

// GJSON paths for values picked out of backend responses
const (
	PathAnswer   = "answer"
	PathError    = "error"
	PathDetail   = "detail"
	PathFilename = "filename"
	PathMessage  = "message"
)
