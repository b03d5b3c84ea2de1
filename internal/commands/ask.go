package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/planet/internal/api"
	"github.com/diogo/planet/internal/chat"
	"github.com/diogo/planet/internal/models"
	"github.com/diogo/planet/internal/render"
)

// errEmptyQuestion is returned when the question is blank after trimming
var errEmptyQuestion = errors.New("question cannot be empty")

// askOptions controls how a one-shot question is run and printed
type askOptions struct {
	// File is uploaded before asking when set
	File string
	// Pretty renders the answer as markdown inside a bubble
	Pretty bool
	// Width is the terminal width used for pretty output
	Width int
}

// NewAskCmd creates the one-shot question command
func NewAskCmd(deps *Dependencies) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question about the uploaded PDF",
		Long: `Ask a single question and print the answer.

The answer is rendered as markdown when stdout is a terminal and printed
raw otherwise, so it can be piped. Use --file to upload a PDF first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deps.client()
			if err != nil {
				return err
			}
			defer client.Close()

			tty := isStdoutTTY()
			opts := askOptions{
				File:   fileFlag,
				Pretty: tty,
				Width:  getTerminalWidth(),
			}
			return runAsk(client, cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "PDF to upload before asking")
	return cmd
}

// runAsk asks question through a fresh panel and prints the assistant turn.
// The turn is printed even when the request failed; the error is returned
// afterwards for a non-zero exit.
func runAsk(client api.ClientInterface, out, errOut io.Writer, question string, opts askOptions) error {
	panel := chat.NewPanel()

	if opts.File != "" {
		if err := runUpload(client, panel, errOut, errOut, opts.File, opts.Pretty); err != nil {
			return err
		}
	}

	q, ok := panel.BeginQuestion(question)
	if !ok {
		return errEmptyQuestion
	}

	prog := startProgress(opts.Pretty, "Processing")
	result, err := client.Ask(q)
	if err != nil {
		prog.fail()
	} else {
		prog.success("Done")
	}
	panel.FinishQuestion(result, err)

	answer, _ := panel.LastAnswer()
	if opts.Pretty {
		printAnswer(out, answer, opts.Width)
	} else {
		fmt.Fprintln(out, answer)
	}

	if err != nil {
		fmt.Fprintln(errOut, formatErrorMessage(err, "Ask failed"))
		return err
	}
	return nil
}

// printAnswer prints an assistant turn the way the chat TUI shows it
func printAnswer(out io.Writer, answer string, termWidth int) {
	width := bubbleWidth(termWidth)

	fmt.Fprintln(out, assistantAvatarStyle.Render(models.AssistantAvatar))

	rendered, err := render.MarkdownWithWidth(answer, width-4)
	if err != nil {
		rendered = answer
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Fprintln(out, assistantBubbleStyle.Width(width).Render(rendered))
}
