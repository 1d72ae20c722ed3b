package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/img2ascii/internal/ctxlog"
	"github.com/ironsheep/img2ascii/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter as MCP tools over stdin/stdout",
		Long: "Serve the converter as MCP (Model Context Protocol) tools.\n\n" +
			"Requests are read as JSON-RPC 2.0, one per line, from stdin and responses\n" +
			"are written to stdout. Logs go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctxlog.FromContext(cmd.Context()).Debug("starting MCP server", "version", server.Version)
			if err := server.New().Run(cmd.Context(), a.stdin, a.stdout); err != nil {
				return &RunError{Err: err}
			}
			return nil
		},
	}
}
