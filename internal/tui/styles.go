// Package tui provides the terminal user interface for planet.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/planet/internal/errors"
	"github.com/diogo/planet/internal/models"
	"github.com/diogo/planet/internal/render"
)

// Color variables (updated from theme)
var (
	// Base colors
	colorSurface lipgloss.Color
	colorBorder  lipgloss.Color

	// Accent colors
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color

	// Text colors
	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color

	// Avatar badges
	colorUserAvatar      lipgloss.Color
	colorAssistantAvatar lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	// Header panel style
	headerStyle lipgloss.Style

	// Title style for header
	titleStyle lipgloss.Style

	// Current file indicator
	fileStyle lipgloss.Style

	// Hint text style
	hintStyle lipgloss.Style

	// Messages area panel
	messagesAreaStyle lipgloss.Style

	// Avatar badges
	userAvatarStyle      lipgloss.Style
	assistantAvatarStyle lipgloss.Style

	// User message bubble
	userBubbleStyle lipgloss.Style

	// Assistant message bubble
	assistantBubbleStyle lipgloss.Style

	// Input area panel
	inputPanelStyle lipgloss.Style

	// Input label style
	inputLabelStyle lipgloss.Style

	// Loading/spinner style
	loadingStyle lipgloss.Style

	// Notice styles
	noticeInfoStyle    lipgloss.Style
	noticeSuccessStyle lipgloss.Style
	noticeErrorStyle   lipgloss.Style

	// File picker panel
	pickerPanelStyle lipgloss.Style
	pickerTitleStyle lipgloss.Style

	// Status bar styles
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	// Error style
	errorStyle lipgloss.Style

	// Welcome styles
	welcomeStyle      lipgloss.Style
	welcomeTitleStyle lipgloss.Style
)

// Gradient colors for animated processing bar (fixed colors)
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#22c55e"), // Green
	lipgloss.Color("#4ade80"), // Light green
	lipgloss.Color("#a78bfa"), // Violet
	lipgloss.Color("#e9d5ff"), // Lavender
	lipgloss.Color("#c084fc"), // Purple
	lipgloss.Color("#38bdf8"), // Sky
	lipgloss.Color("#2dd4bf"), // Teal
	lipgloss.Color("#16a34a"), // Dark green
}

// init loads the default theme on package initialization
func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorSurface = theme.Surface
	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorWarning = theme.Warning
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute
	colorUserAvatar = theme.UserAvatar
	colorAssistantAvatar = theme.AssistantAvatar

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	fileStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	// Badges are drawn as solid pills: dark text on the avatar color
	userAvatarStyle = lipgloss.NewStyle().
		Background(colorUserAvatar).
		Foreground(colorSurface).
		Bold(true).
		Padding(0, 1)

	assistantAvatarStyle = lipgloss.NewStyle().
		Background(colorAssistantAvatar).
		Foreground(colorSurface).
		Bold(true).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorUserAvatar).
		Padding(0, 1).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorAssistantAvatar).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	noticeInfoStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	noticeSuccessStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	noticeErrorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	pickerPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	pickerTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	welcomeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center)
}

// noticeStyle picks the style for a notice kind
func noticeStyle(kind models.NoticeKind) lipgloss.Style {
	switch kind {
	case models.NoticeSuccess:
		return noticeSuccessStyle
	case models.NoticeError:
		return noticeErrorStyle
	default:
		return noticeInfoStyle
	}
}

// FormatError returns a styled error message with additional context.
// It extracts details from the api error types if available.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case apierrors.IsTransportError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running (planet status)"))
	case apierrors.IsValidationError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Only PDF files can be uploaded"))
	}

	return sb.String()
}
