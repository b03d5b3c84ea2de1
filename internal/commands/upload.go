package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diogo/planet/internal/api"
	"github.com/diogo/planet/internal/chat"
	"github.com/diogo/planet/internal/models"
)

// NewUploadCmd creates the one-shot upload command
func NewUploadCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF to the backend",
		Long: `Upload a PDF so later questions are answered from it.
Only application/pdf files are accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deps.client()
			if err != nil {
				return err
			}
			defer client.Close()

			panel := chat.NewPanel()
			return runUpload(client, panel, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], isStdoutTTY())
		},
	}
}

// runUpload uploads path through panel and prints the resulting notice
func runUpload(uploader chat.Uploader, panel *chat.Panel, out, errOut io.Writer, path string, showProgress bool) error {
	file, err := api.SelectFile(path)
	if err != nil {
		fmt.Fprintln(errOut, formatErrorMessage(err, models.NoticeUploadFailed))
		return err
	}

	if file == nil {
		err = panel.BeginUpload(nil)
	} else {
		prog := startProgress(showProgress, fmt.Sprintf("Uploading %s", file.Name))
		err = panel.SubmitFile(uploader, file)
		if err != nil {
			prog.fail()
		} else {
			prog.success("Uploaded")
		}
	}

	notice := panel.Notice()
	if err != nil {
		text := models.NoticeUploadFailed
		if notice != nil {
			text = notice.Text
		}
		fmt.Fprintln(errOut, formatErrorMessage(err, text))
		return err
	}

	if notice != nil {
		fmt.Fprintln(out, successStyle.Render("✓ "+notice.Text))
	}
	return nil
}
