package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/companion/internal/config"
	"github.com/sandevgo/companion/internal/transport/telegram"
	"github.com/sandevgo/companion/pkg/log"
	"github.com/sandevgo/companion/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Run the Telegram bot",
	Long:         `Starts the Telegram bot and serves the owner until interrupted.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		comp, err := NewCompanion(ctx, companionOptions{transcriptPath: transcriptPath})
		if err != nil {
			return err
		}

		tgCfg, err := config.NewTelegramConfig()
		if err != nil {
			return err
		}

		bot, err := telegram.NewBot(ctx, tgCfg, comp)
		if err != nil {
			return err
		}

		logger.Info().Msg("starting companion")
		if err := srv.Run(ctx, bot); err != nil {
			return err
		}
		logger.Info().Msg("companion has been shut down gracefully")
		return nil
	},
}

func init() {
	addTranscriptFlag(serveCmd)
	rootCmd.AddCommand(serveCmd)
}
