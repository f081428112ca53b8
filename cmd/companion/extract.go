package main

import (
	"encoding/json"
	"fmt"

	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/ui"
	"github.com/spf13/cobra"
)

var (
	extractJSON          bool
	extractEmptyFallback bool
)

var extractCmd = &cobra.Command{
	Use:          "extract",
	Short:        "Extract memories from the conversation",
	Long:         `Runs one extraction pass over the conversation and prints preferences, emotional patterns and facts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		comp, err := NewCompanion(ctx, companionOptions{
			transcriptPath: transcriptPath,
			emptyFallback:  extractEmptyFallback,
		})
		if err != nil {
			return err
		}

		res := comp.Memories(ctx, memory.NewSession(), true)

		out := cmd.OutOrStdout()
		if extractJSON {
			data, err := json.MarshalIndent(res.Record, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		_, err = fmt.Fprint(out, ui.RenderMemories(res))
		return err
	},
}

func init() {
	addTranscriptFlag(extractCmd)
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print the memory record as JSON")
	extractCmd.Flags().BoolVar(&extractEmptyFallback, "empty-fallback", false, "fall back to an empty record instead of the sample one")
	rootCmd.AddCommand(extractCmd)
}
