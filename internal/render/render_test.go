package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("expected Style='dark', got %s", opts.Style)
	}
	if !opts.EnableEmoji {
		t.Error("expected EnableEmoji=true")
	}
	if !opts.PreserveNewLines {
		t.Error("expected PreserveNewLines=true")
	}
	if !opts.TableWrap {
		t.Error("expected TableWrap=true")
	}
	if opts.InlineTableLinks {
		t.Error("expected InlineTableLinks=false")
	}
}

func TestOptionsWithWidth(t *testing.T) {
	testCases := []struct {
		name  string
		width int
		want  int
	}{
		{"normal", 120, 120},
		{"minimum", 20, 20},
		{"clamped", 5, 20},
		{"negative", -10, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions().WithWidth(tc.width)
			if opts.Width != tc.want {
				t.Errorf("expected Width=%d, got %d", tc.want, opts.Width)
			}
			if opts.Style != "dark" {
				t.Errorf("expected Style='dark', got %s", opts.Style)
			}
		})
	}
}

func TestOptionsWithStyle(t *testing.T) {
	opts := DefaultOptions().WithStyle("light")

	if opts.Style != "light" {
		t.Errorf("expected Style='light', got %s", opts.Style)
	}
}

func TestMarkdown(t *testing.T) {
	ClearCache()
	defer ClearCache()

	testCases := []struct {
		name     string
		input    string
		width    int
		contains string
	}{
		{
			name:     "heading",
			input:    "# Revenue summary",
			width:    80,
			contains: "Revenue", // Check individual words due to ANSI codes
		},
		{
			name:     "bold",
			input:    "The total is **42**",
			width:    80,
			contains: "42",
		},
		{
			name:     "list",
			input:    "- page 1\n- page 2",
			width:    80,
			contains: "page",
		},
		{
			name:     "code_block",
			input:    "```\nSELECT 1\n```",
			width:    80,
			contains: "SELECT",
		},
		{
			name:     "narrow_width",
			input:    "# Long heading that should wrap",
			width:    40,
			contains: "Long",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions().WithWidth(tc.width)
			output, err := Markdown(tc.input, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output, tc.contains) {
				t.Errorf("output should contain %q, got: %s", tc.contains, output)
			}
		})
	}
}

func TestMarkdownMemoizesOutput(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions()
	first, err := Markdown("# Cached", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if OutputCacheLen() != 1 {
		t.Fatalf("expected 1 cached output, got %d", OutputCacheLen())
	}

	second, err := Markdown("# Cached", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("cached output should match the first render")
	}
	if OutputCacheLen() != 1 {
		t.Errorf("repeat render should not add entries, got %d", OutputCacheLen())
	}

	if _, err := Markdown("# Cached", opts.WithWidth(60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if OutputCacheLen() != 2 {
		t.Errorf("different width should add an entry, got %d", OutputCacheLen())
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	input := "# Hello World\n\nThis is a test."
	output, err := MarkdownWithWidth(input, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Hello") {
		t.Errorf("output should contain 'Hello', got: %s", output)
	}
	if !strings.Contains(output, "test") {
		t.Errorf("output should contain 'test', got: %s", output)
	}
}

func TestMarkdownEmoji(t *testing.T) {
	input := "Hello :smile: world"

	opts := DefaultOptions()
	output, err := Markdown(input, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(output, ":smile:") {
		t.Errorf("emoji should have been converted, got: %s", output)
	}

	opts.EnableEmoji = false
	output, err = Markdown(input, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, ":smile:") {
		t.Errorf("emoji should NOT have been converted, got: %s", output)
	}
}

func TestMarkdownInvalidStyle(t *testing.T) {
	opts := DefaultOptions().WithStyle("nonexistent_style_path")
	_, err := Markdown("# Test", opts)
	if err == nil {
		t.Error("expected error for invalid style path")
	}
}

func TestMarkdownOrRaw(t *testing.T) {
	defer SetDefaultOptions(DefaultOptions())

	t.Run("renders and trims newlines", func(t *testing.T) {
		out := MarkdownOrRaw("plain answer", 80)
		if !strings.Contains(ansi.Strip(out), "plain answer") {
			t.Errorf("expected rendered text, got %q", out)
		}
		if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
			t.Errorf("expected trimmed output, got %q", out)
		}
	})

	t.Run("falls back to raw text on render error", func(t *testing.T) {
		SetDefaultOptions(DefaultOptions().WithStyle("nonexistent_style_path"))
		out := MarkdownOrRaw("**raw**", 80)
		if out != "**raw**" {
			t.Errorf("expected raw text, got %q", out)
		}
	})
}

func TestSetDefaultOptions(t *testing.T) {
	defer SetDefaultOptions(DefaultOptions())

	SetDefaultOptions(DefaultOptions().WithStyle("light"))
	if got := CurrentOptions().Style; got != "light" {
		t.Errorf("expected Style='light', got %s", got)
	}
}
