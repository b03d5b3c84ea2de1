package commands

import (
	"github.com/spf13/cobra"
)

// NewChatCmd creates the interactive chat command
func NewChatCmd(deps *Dependencies) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session about your uploaded PDF.

Ctrl+O opens a file picker to upload a PDF, or type /upload <path>.
Ctrl+Y copies the last answer. Type 'exit', '/quit', or press Esc to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(deps, fileFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "PDF to upload when the chat starts")
	return cmd
}

func runChat(deps *Dependencies, initialFile string) error {
	client, err := deps.client()
	if err != nil {
		return err
	}
	defer client.Close()

	return deps.tui().RunChat(client, initialFile)
}
