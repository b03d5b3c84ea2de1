// Package chat holds the chat panel state: the turn list, the composer draft,
// the busy latch for questions and the current-file record for uploads.
//
// A Panel is driven from a single goroutine (the TUI update loop or one CLI
// command) and is not safe for concurrent use. Network calls are split into a
// synchronous Begin step, the request itself, and a Finish step so an event
// loop can run the request in between.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diogo/planet/internal/api"
	apierrors "github.com/diogo/planet/internal/errors"
	"github.com/diogo/planet/internal/logging"
	"github.com/diogo/planet/internal/models"
)

// ErrUploadInProgress is returned when an upload is attempted while another is running
var ErrUploadInProgress = errors.New("an upload is already in progress")

// Uploader sends a file to the backend
type Uploader interface {
	Upload(file *models.SelectedFile) (*api.UploadResult, error)
}

// Asker sends a question to the backend
type Asker interface {
	Ask(question string) (*api.AskResult, error)
}

// Panel is the state of one chat session
type Panel struct {
	turns       []models.ChatTurn
	draft       string
	busy        bool
	uploading   bool
	currentFile *models.UploadedFile
	notice      *models.Notice
}

// NewPanel creates an empty panel
func NewPanel() *Panel {
	return &Panel{}
}

// Turns returns a copy of the conversation in display order
func (p *Panel) Turns() []models.ChatTurn {
	turns := make([]models.ChatTurn, len(p.turns))
	copy(turns, p.turns)
	return turns
}

// Len returns the number of turns
func (p *Panel) Len() int {
	return len(p.turns)
}

// LastAnswer returns the text of the most recent assistant turn
func (p *Panel) LastAnswer() (string, bool) {
	for i := len(p.turns) - 1; i >= 0; i-- {
		if p.turns[i].Role == models.RoleAssistant {
			return p.turns[i].Text, true
		}
	}
	return "", false
}

// Draft returns the composer text
func (p *Panel) Draft() string {
	return p.draft
}

// SetDraft replaces the composer text. Ignored while busy, like a disabled input.
func (p *Panel) SetDraft(text string) {
	if p.busy {
		return
	}
	p.draft = text
}

// Busy reports whether a question is in flight
func (p *Panel) Busy() bool {
	return p.busy
}

// Uploading reports whether an upload is in flight
func (p *Panel) Uploading() bool {
	return p.uploading
}

// CurrentFile returns the most recently uploaded file, or nil
func (p *Panel) CurrentFile() *models.UploadedFile {
	return p.currentFile
}

// Notice returns the pending user-visible notice, or nil
func (p *Panel) Notice() *models.Notice {
	return p.notice
}

// DismissNotice clears the pending notice
func (p *Panel) DismissNotice() {
	p.notice = nil
}

// SetNotice replaces the pending notice
func (p *Panel) SetNotice(kind models.NoticeKind, text string) {
	p.notice = &models.Notice{Kind: kind, Text: text}
}

// BeginQuestion appends the user turn for text, clears the draft and sets
// busy. It returns false without touching any state when text is blank or a
// question is already in flight.
func (p *Panel) BeginQuestion(text string) (string, bool) {
	if p.busy || strings.TrimSpace(text) == "" {
		return "", false
	}

	p.turns = append(p.turns, models.ChatTurn{Role: models.RoleUser, Text: text})
	p.draft = ""
	p.busy = true

	logging.WithFields("turns", len(p.turns)).Debug("question submitted")
	return text, true
}

// FinishQuestion appends the assistant turn for the outcome of the request
// started by BeginQuestion and clears busy. Calls without a question in
// flight are ignored.
func (p *Panel) FinishQuestion(result *api.AskResult, err error) {
	if !p.busy {
		return
	}
	defer func() { p.busy = false }()

	var text string
	if err != nil {
		logging.WithFields("error", err, "status", apierrors.GetHTTPStatus(err)).Warn("question failed")
		text = models.ErrorAnswer
	} else {
		text = result.Text()
	}

	p.turns = append(p.turns, models.ChatTurn{Role: models.RoleAssistant, Text: text})
}

// SubmitQuestion runs the whole ask flow synchronously. It reports whether
// the question was accepted.
func (p *Panel) SubmitQuestion(asker Asker, text string) bool {
	question, ok := p.BeginQuestion(text)
	if !ok {
		return false
	}

	result, err := asker.Ask(question)
	p.FinishQuestion(result, err)
	return true
}

// SubmitDraft submits the current composer text
func (p *Panel) SubmitDraft(asker Asker) bool {
	return p.SubmitQuestion(asker, p.draft)
}

// BeginUpload validates file and marks an upload in flight. A missing file
// or a MIME type other than application/pdf yields a ValidationError and a
// notice. While another upload is running the attempt is rejected.
func (p *Panel) BeginUpload(file *models.SelectedFile) error {
	if file == nil {
		p.SetNotice(models.NoticeError, models.NoticeNoFile)
		return apierrors.NewValidationError("file", models.NoticeNoFile)
	}

	if !file.IsPDF() {
		p.SetNotice(models.NoticeError, models.NoticeNotPDF)
		return apierrors.NewValidationError("file", models.NoticeNotPDF)
	}

	if p.uploading {
		p.SetNotice(models.NoticeInfo, models.NoticeUploadBusy)
		return ErrUploadInProgress
	}

	p.uploading = true
	p.SetNotice(models.NoticeInfo, fmt.Sprintf("Uploading %s...", file.Name))
	logging.WithFields("file", file.Name, "size", file.Size).Debug("upload started")
	return nil
}

// FinishUpload records the outcome of the upload started by BeginUpload.
// Only a successful upload replaces the current file. Calls without an
// upload in flight are ignored.
func (p *Panel) FinishUpload(file *models.SelectedFile, result *api.UploadResult, err error) {
	if !p.uploading || file == nil {
		return
	}
	p.uploading = false

	if err != nil {
		logging.WithFields("file", file.Name, "error", err).Warn("upload failed")
		p.SetNotice(models.NoticeError, UploadFailureNotice(err))
		return
	}

	p.currentFile = file.Uploaded()
	p.SetNotice(models.NoticeSuccess, models.NoticeUploaded)
	if result != nil {
		logging.WithFields("file", file.Name, "stored_as", result.FileName).Info("upload finished")
	}
}

// SubmitFile runs the whole upload flow synchronously: at most one network
// call, no retry.
func (p *Panel) SubmitFile(uploader Uploader, file *models.SelectedFile) error {
	if err := p.BeginUpload(file); err != nil {
		return err
	}

	result, err := uploader.Upload(file)
	p.FinishUpload(file, result, err)
	return err
}

// UploadFailureNotice builds the notice text for a failed upload, including
// the server's error message when it sent one
func UploadFailureNotice(err error) string {
	if msg := apierrors.GetServerMessage(err); msg != "" {
		return fmt.Sprintf(models.NoticeUploadFailedFmt, msg)
	}
	var verr *apierrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return models.NoticeUploadFailed
}
