// Package models provides the core data structures exchanged with the gateway and the HTTP runtime.
package models

// Request represents an incoming client request containing a body and associated headers.
type Request struct {
	Path    string
	Method  string
	Body    string
	Headers map[string]string
	// IsBase64Encoded marks Body as base64 encoded.
	IsBase64Encoded bool
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
