package render

import (
	"strings"
	"sync"
)

var (
	defaultsMu sync.RWMutex
	defaults   = DefaultOptions()
)

// SetDefaultOptions replaces the options used by MarkdownWithWidth
func SetDefaultOptions(opts Options) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = opts
}

// CurrentOptions returns the options used by MarkdownWithWidth
func CurrentOptions() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// Markdown renders markdown content for terminal display.
// Output is memoized per (content, options); renderers are pooled.
func Markdown(content string, opts Options) (string, error) {
	key := outputKey(content, opts)
	if out, ok := globalOutput.Get(key); ok {
		return out, nil
	}

	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	out, err := renderer.Render(content)
	if err != nil {
		return "", err
	}

	globalOutput.Add(key, out)
	return out, nil
}

// MarkdownWithWidth renders with the current default options at the given width.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, CurrentOptions().WithWidth(width))
}

// MarkdownOrRaw renders content as markdown with the default options and
// trims the newlines glamour adds. The raw text is returned when rendering fails.
func MarkdownOrRaw(content string, width int) string {
	out, err := MarkdownWithWidth(content, width)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
