package render

import (
	"github.com/diogo/planet/internal/config"
)

// OptionsFromConfig builds render options from the user configuration.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	// booleans always overwrite defaults since the config has explicit defaults
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks

	return opts
}

// Configure applies the configured markdown options and TUI theme as the
// package defaults. An unknown theme name keeps the current theme.
func Configure(cfg config.Config) {
	SetDefaultOptions(OptionsFromConfig(cfg))
	if cfg.TUITheme != "" {
		SetTUITheme(cfg.TUITheme)
	}
}
