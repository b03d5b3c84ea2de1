package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diogo/planet/internal/api"
)

// NewStatusCmd creates the backend health check command
func NewStatusCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deps.client()
			if err != nil {
				return err
			}
			defer client.Close()

			return runStatus(client, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runStatus(client api.ClientInterface, out, errOut io.Writer) error {
	message, err := client.Ping()
	if err != nil {
		fmt.Fprintln(errOut, formatErrorMessage(err, "Backend unreachable at "+client.BaseURL()))
		return err
	}

	line := fmt.Sprintf("✓ Backend at %s is up", client.BaseURL())
	if message != "" {
		line += ": " + message
	}
	fmt.Fprintln(out, successStyle.Render(line))
	return nil
}
