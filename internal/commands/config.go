package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/planet/internal/config"
	"github.com/diogo/planet/internal/render"
)

// NewConfigCmd creates a new config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration file path, the effective settings and the
backend URL that would be used (after --api-url and ` + config.EnvAPIURL + `).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a configuration value",
		Long: fmt.Sprintf(`Update a single configuration value and save the file.

Keys: %s
Themes: %s`, strings.Join(config.SettableKeys(), ", "), strings.Join(render.TUIThemeNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runConfigShow(out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(out, labelStyle.Render("Config file: ")+path)
	fmt.Fprintln(out, labelStyle.Render("Backend URL: ")+config.ResolveAPIURL(apiURLFlag, cfg))
	fmt.Fprintln(out, string(data))
	return nil
}

func runConfigSet(out io.Writer, key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if key == "tui_theme" {
		if _, ok := render.GetTUIThemeByName(value); !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", value, strings.Join(render.TUIThemeNames(), ", "))
		}
	}

	if err := config.SetValue(&cfg, key, value); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ %s updated", key)))
	return nil
}
