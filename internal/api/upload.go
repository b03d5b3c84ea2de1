package api

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/planet/internal/errors"
	"github.com/diogo/planet/internal/logging"
	"github.com/diogo/planet/internal/models"
)

// UploadResult is the backend's acknowledgement of an upload. The body is
// opaque; FileName and Message are filled in when the backend provides them.
type UploadResult struct {
	FileName string
	Message  string
	Body     string
}

// SelectFile stats path and detects its MIME type from the extension.
// An empty path yields a nil file, which upload validation rejects.
func SelectFile(path string) (*models.SelectedFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &models.SelectedFile{
		Path:     path,
		Name:     filepath.Base(path),
		MIMEType: DetectMIMEType(path),
		Size:     fileInfo.Size(),
	}, nil
}

// DetectMIMEType returns the MIME type registered for the file extension,
// or application/octet-stream when none is known
func DetectMIMEType(path string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		return "application/octet-stream"
	}
	return mimeType
}

// Upload sends file to the upload endpoint as a single multipart field
func (c *Client) Upload(file *models.SelectedFile) (*UploadResult, error) {
	if file == nil {
		return nil, apierrors.NewValidationError("file", models.NoticeNoFile)
	}
	if !file.IsPDF() {
		return nil, apierrors.NewValidationError("file", models.NoticeNotPDF)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	body, contentType, err := buildMultipartBody(f, file.Name, file.MIMEType)
	if err != nil {
		return nil, err
	}

	req, err := fhttp.NewRequest(fhttp.MethodPost, c.endpointURL(models.PathUpload), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	logging.WithFields("file", file.Name, "size", file.Size).Info("uploading file")

	respBody, err := c.do(req, models.PathUpload, isOK)
	if err != nil {
		return nil, err
	}

	return parseUploadResponse(respBody, file.Name), nil
}

// buildMultipartBody writes the file payload as the "file" form field
func buildMultipartBody(reader io.Reader, fileName, mimeType string) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		models.UploadFieldName, quoteEscaper.Replace(fileName)))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, reader); err != nil {
		return nil, "", fmt.Errorf("failed to write file data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func parseUploadResponse(body []byte, fallbackName string) *UploadResult {
	result := &UploadResult{
		FileName: fallbackName,
		Body:     string(body),
	}

	if !gjson.ValidBytes(body) {
		return result
	}

	if name := gjson.GetBytes(body, PathFilename).String(); name != "" {
		result.FileName = name
	}
	result.Message = gjson.GetBytes(body, PathMessage).String()

	return result
}
