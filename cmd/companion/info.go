package main

import (
	"fmt"

	"github.com/sandevgo/companion/internal/service/ui"
	"github.com/spf13/cobra"
)

var transcriptPath string

func addTranscriptFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "JSON transcript file (defaults to the bundled sample)")
}

var personalitiesCmd = &cobra.Command{
	Use:   "personalities",
	Short: "List available personalities",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), ui.RenderPersonalities())
		return err
	},
}

var transcriptCmd = &cobra.Command{
	Use:          "transcript",
	Short:        "Show the conversation memories are extracted from",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conversation, err := loadConversation(transcriptPath)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderTranscript(conversation))
		return err
	},
}

func init() {
	addTranscriptFlag(transcriptCmd)
	rootCmd.AddCommand(personalitiesCmd, transcriptCmd)
}
