// Package models contains data types and constants for the planet client.
package models

// Backend endpoint paths, relative to the configured base URL
const (
	DefaultBaseURL = "http://localhost:8000"

	PathRoot   = "/"
	PathUpload = "/upload/"
	PathAsk    = "/ask/"

	// UploadFieldName is the sole multipart field of an upload request
	UploadFieldName = "file"
)

// MIMETypePDF is the only MIME type accepted for upload
const MIMETypePDF = "application/pdf"

// Fixed assistant texts
const (
	FallbackAnswer = "I couldn't find an answer to that."
	ErrorAnswer    = "Error retrieving response."
)

// Upload notice texts
const (
	NoticeNoFile          = "Please select a file."
	NoticeNotPDF          = "Only PDF files are allowed."
	NoticeUploaded        = "PDF uploaded successfully!"
	NoticeUploadFailed    = "Failed to upload PDF."
	NoticeUploadFailedFmt = "Upload failed: %s"
	NoticeUploadBusy      = "An upload is already in progress."
)

// Branding shown in the header and the assistant avatar
const (
	BrandName       = "planet"
	AssistantAvatar = "ai"
)
