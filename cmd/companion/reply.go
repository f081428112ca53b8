package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/internal/service/ui"
	"github.com/sandevgo/companion/pkg/log"
	"github.com/spf13/cobra"
)

var (
	replyPersonality string
	noContext        bool
)

var replyCmd = &cobra.Command{
	Use:          "reply [flags] MESSAGE...",
	Short:        "Reply to a message as one personality",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		comp, err := NewCompanion(ctx, companionOptions{transcriptPath: transcriptPath})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p, err := personality.Parse(replyPersonality)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("personality", replyPersonality).Msg("invalid personality selected")
			_, err = fmt.Fprintln(out, ui.ErrorStyle.Render(personality.InvalidSelection))
			return err
		}

		resp := comp.Reply(ctx, memory.NewSession(), strings.Join(args, " "), p, !noContext)
		_, err = fmt.Fprintln(out, ui.RenderResponse(resp))
		return err
	},
}

var compareCmd = &cobra.Command{
	Use:          "compare [flags] MESSAGE...",
	Short:        "Reply to a message as every personality",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		comp, err := NewCompanion(ctx, companionOptions{transcriptPath: transcriptPath})
		if err != nil {
			return err
		}

		message := strings.Join(args, " ")
		responses := comp.Compare(ctx, memory.NewSession(), message, !noContext)
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderComparison(message, responses))
		return err
	},
}

func init() {
	addTranscriptFlag(replyCmd)
	replyCmd.Flags().StringVarP(&replyPersonality, "personality", "p", personality.CalmMentor.Name(), "personality name or alias (mentor, friend, therapist)")
	replyCmd.Flags().BoolVar(&noContext, "no-context", false, "do not use extracted memories")

	addTranscriptFlag(compareCmd)
	compareCmd.Flags().BoolVar(&noContext, "no-context", false, "do not use extracted memories")

	rootCmd.AddCommand(replyCmd, compareCmd)
}
