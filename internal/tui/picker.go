package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// pdfExtensions are the extensions the picker lets the user choose
var pdfExtensions = []string{".pdf", ".PDF"}

// pickerResult is what a key press did to the picker
type pickerResult int

const (
	pickerBrowsing pickerResult = iota
	pickerSelected
	pickerRejected
	pickerCancelled
)

// filePicker wraps the bubbles filepicker with PDF filtering
type filePicker struct {
	model filepicker.Model
}

// newFilePicker creates a picker rooted at dir, or the working directory when empty
func newFilePicker(dir string) filePicker {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	fp := filepicker.New()
	fp.AllowedTypes = pdfExtensions
	fp.CurrentDirectory = dir
	fp.ShowHidden = false
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(colorPrimary)
	fp.Styles.Selected = fp.Styles.Selected.Foreground(colorPrimary).Bold(true)
	fp.Styles.Directory = fp.Styles.Directory.Foreground(colorSecondary)
	fp.Styles.File = fp.Styles.File.Foreground(colorText)
	fp.Styles.DisabledFile = fp.Styles.DisabledFile.Foreground(colorTextMute)

	return filePicker{model: fp}
}

// Init reads the starting directory
func (p filePicker) Init() tea.Cmd {
	return p.model.Init()
}

// Update forwards msg to the picker and reports whether a file was chosen.
// Esc closes the picker instead of navigating up.
func (p filePicker) Update(msg tea.Msg) (filePicker, pickerResult, string, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return p, pickerCancelled, "", nil
	}

	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)

	if ok, path := p.model.DidSelectFile(msg); ok {
		return p, pickerSelected, path, cmd
	}
	if ok, path := p.model.DidSelectDisabledFile(msg); ok {
		return p, pickerRejected, path, cmd
	}
	return p, pickerBrowsing, "", cmd
}

// Dir returns the directory being browsed
func (p filePicker) Dir() string {
	return p.model.CurrentDirectory
}

// View renders the picker
func (p filePicker) View() string {
	return p.model.View()
}
