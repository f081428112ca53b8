package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/companion/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Serve the companion as an MCP server over stdio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		comp, err := NewCompanion(ctx, companionOptions{transcriptPath: transcriptPath})
		if err != nil {
			return err
		}

		return mcp.NewServer(comp).Serve(ctx, os.Stdin, os.Stdout)
	},
}

func init() {
	addTranscriptFlag(mcpCmd)
	rootCmd.AddCommand(mcpCmd)
}
