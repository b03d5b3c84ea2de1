package models

// UploadedFile is the display metadata of the most recently uploaded file
type UploadedFile struct {
	Name     string
	MIMEType string
}

// SelectedFile is a file picked for upload. The payload stays on disk and is
// only read while the upload request is built.
type SelectedFile struct {
	Path     string
	Name     string
	MIMEType string
	Size     int64
}

// IsPDF reports whether the file's MIME type is exactly application/pdf
func (f *SelectedFile) IsPDF() bool {
	return f != nil && f.MIMEType == MIMETypePDF
}

// Uploaded returns the display metadata recorded after a successful upload
func (f *SelectedFile) Uploaded() *UploadedFile {
	return &UploadedFile{Name: f.Name, MIMEType: f.MIMEType}
}
