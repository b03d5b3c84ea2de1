package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/planet/internal/api"
	"github.com/diogo/planet/internal/chat"
	"github.com/diogo/planet/internal/models"
	"github.com/diogo/planet/internal/render"
)

// Composer commands
const (
	uploadCommand = "/upload"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	askResultMsg struct {
		result *api.AskResult
		err    error
	}
	uploadResultMsg struct {
		file   *models.SelectedFile
		result *api.UploadResult
		err    error
	}
	clipboardMsg struct {
		err error
	}
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// Model represents the TUI state
type Model struct {
	client api.ClientInterface
	panel  *chat.Panel

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	picker   filePicker

	// State
	picking        bool
	pickerDir      string
	initialFile    string
	ready          bool
	err            error
	animationFrame int // Frame counter for processing animation

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model. When initialFile is set it is
// uploaded as soon as the program starts.
func NewChatModel(client api.ClientInterface, initialFile string) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about your PDF..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle
	ta.BlurredStyle.Base = lipgloss.NewStyle().Foreground(colorTextMute)

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:      client,
		panel:       chat.NewPanel(),
		textarea:    ta,
		spinner:     s,
		initialFile: initialFile,
	}
}

// Panel exposes the chat state
func (m Model) Panel() *chat.Panel {
	return m.panel
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.spinner.Tick}
	if m.initialFile != "" {
		cmds = append(cmds, m.startUpload(m.initialFile))
	}
	return tea.Batch(cmds...)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok && m.picking {
		return m.updatePicker(key)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 7  // Processing line plus input panel with border
		noticeHeight := 1 // Notice line
		statusHeight := 2 // Status bar with margin
		padding := 2      // Messages panel border

		vpHeight := m.height - headerHeight - inputHeight - noticeHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+o":
			m.picking = true
			m.picker = newFilePicker(m.pickerDir)
			if m.height > 0 {
				// The picker sizes itself from the window
				return m, tea.Batch(m.picker.Init(), resize(m.width, m.height))
			}
			return m, m.picker.Init()

		case "ctrl+y":
			answer, ok := m.panel.LastAnswer()
			if !ok {
				m.panel.SetNotice(models.NoticeInfo, "Nothing to copy yet.")
				return m, nil
			}
			return m, copyToClipboard(answer)

		case "enter":
			return m.submit()
		}

	case askResultMsg:
		m.panel.FinishQuestion(msg.result, msg.err)
		cmds = append(cmds, m.textarea.Focus())
		m.updateViewport()
		m.viewport.GotoBottom()

	case uploadResultMsg:
		m.panel.FinishUpload(msg.file, msg.result, msg.err)

	case clipboardMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.panel.SetNotice(models.NoticeSuccess, "Answer copied to clipboard.")
		}

	case spinner.TickMsg:
		if m.panel.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.panel.Busy() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks; the
	// composer is disabled while a question is in flight
	if !m.panel.Busy() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
			m.panel.SetDraft(m.textarea.Value())
		}
	}

	// The picker reads directories asynchronously and tracks the window size
	if _, ok := msg.(tea.KeyMsg); !ok {
		var pickerCmd tea.Cmd
		m.picker, _, _, pickerCmd = m.picker.Update(msg)
		cmds = append(cmds, pickerCmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles enter in the composer
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())

	switch {
	case input == "exit" || input == "quit" || input == "/exit" || input == "/quit":
		return m, tea.Quit

	case !m.panel.Busy() && (input == uploadCommand || strings.HasPrefix(input, uploadCommand+" ")):
		path := strings.TrimSpace(strings.TrimPrefix(input, uploadCommand))
		m.textarea.Reset()
		m.panel.SetDraft("")
		return m, m.startUpload(path)
	}

	question, ok := m.panel.BeginQuestion(m.textarea.Value())
	if !ok {
		return m, nil
	}

	m.err = nil
	m.animationFrame = 0
	m.textarea.Reset()
	m.textarea.Blur()
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.askQuestion(question),
		m.spinner.Tick,
		animationTick(),
	)
}

// updatePicker handles keys while the file picker is open
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	picker, result, path, cmd := m.picker.Update(msg)
	m.picker = picker

	switch result {
	case pickerCancelled:
		m.picking = false
		m.pickerDir = m.picker.Dir()
		return m, nil

	case pickerRejected:
		m.panel.SetNotice(models.NoticeError, models.NoticeNotPDF)
		return m, cmd

	case pickerSelected:
		m.picking = false
		m.pickerDir = m.picker.Dir()
		return m, tea.Batch(cmd, m.startUpload(path))
	}

	return m, cmd
}

// startUpload validates path through the panel and returns the upload
// command, or nil when the panel rejected the file
func (m Model) startUpload(path string) tea.Cmd {
	file, err := api.SelectFile(path)
	if err != nil {
		m.panel.SetNotice(models.NoticeError, fmt.Sprintf(models.NoticeUploadFailedFmt, err.Error()))
		return nil
	}

	if err := m.panel.BeginUpload(file); err != nil {
		return nil
	}

	client := m.client
	return func() tea.Msg {
		result, err := client.Upload(file)
		return uploadResultMsg{file: file, result: result, err: err}
	}
}

// askQuestion creates a command to send a question to the API
func (m Model) askQuestion(question string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Ask(question)
		return askResultMsg{result: result, err: err}
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: writeClipboard(text)}
	}
}

func resize(width, height int) tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	sections = append(sections, m.renderHeader(contentWidth))

	var body string
	switch {
	case m.picking:
		body = m.renderPicker()
	case m.panel.Len() == 0:
		body = m.renderWelcome()
	default:
		body = m.viewport.View()
	}
	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(body)
	sections = append(sections, messagesPanel)

	if m.panel.Busy() {
		sections = append(sections, m.renderProcessing())
	}

	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	if notice := m.panel.Notice(); notice != nil {
		sections = append(sections, noticeStyle(notice.Kind).Render(notice.Text))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders branding, the current file and the upload affordance
func (m Model) renderHeader(width int) string {
	parts := []string{
		assistantAvatarStyle.Render(models.AssistantAvatar),
		" ",
		titleStyle.Render(models.BrandName),
	}

	if file := m.panel.CurrentFile(); file != nil {
		parts = append(parts,
			hintStyle.Render("  •  "),
			fileStyle.Render("📄 "+file.Name),
		)
	}

	affordance := statusKeyStyle.Render("Ctrl+O") + statusDescStyle.Render(" Upload PDF")
	if m.panel.Uploading() {
		affordance = lipgloss.NewStyle().Foreground(colorWarning).Render("Uploading...")
	}
	parts = append(parts, hintStyle.Render("  •  "), affordance)

	content := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return headerStyle.Width(width).Render(content)
}

// renderWelcome renders the welcome screen when no turns exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	title := welcomeTitleStyle.Width(width).Render("Welcome to " + models.BrandName)
	subtitle := welcomeStyle.Width(width).Render("Upload a PDF with Ctrl+O, then ask questions about it below")

	content := lipgloss.JoinVertical(lipgloss.Center, "", title, subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderPicker renders the file picker in place of the turn list
func (m Model) renderPicker() string {
	title := pickerTitleStyle.Render("Select a PDF to upload")
	hint := hintStyle.Render(m.picker.Dir())
	return pickerPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, hint, "", m.picker.View()))
}

// renderProcessing renders the busy indicator with a gradient bar
func (m Model) renderProcessing() string {
	barChars := []string{"█", "█", "█", "█", "▓", "▒", "░"}
	frame := m.animationFrame

	barWidth := 16
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)
		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Processing...")
	return fmt.Sprintf("%s %s%s", m.spinner.View(), bar.String(), text)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+O", "Upload"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}
	if m.picking {
		shortcuts = []struct {
			key  string
			desc string
		}{
			{"↑↓", "Navigate"},
			{"Enter", "Select"},
			{"Esc", "Cancel"},
		}
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled turns
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for i, turn := range m.panel.Turns() {
		if i > 0 {
			content.WriteString("\n")
		}

		if turn.IsUser() {
			badge := lipgloss.NewStyle().MarginLeft(4).Render(userAvatarStyle.Render(turn.Avatar()))
			bubble := userBubbleStyle.Width(bubbleWidth).Render(turn.Text)
			content.WriteString(badge + "\n" + bubble)
		} else {
			badge := assistantAvatarStyle.Render(turn.Avatar())
			rendered := render.MarkdownOrRaw(turn.Text, bubbleWidth-4)
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(badge + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client api.ClientInterface, initialFile string) error {
	m := NewChatModel(client, initialFile)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
