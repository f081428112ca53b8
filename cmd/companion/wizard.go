package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/companion/internal/config"
	"github.com/sandevgo/companion/internal/service/installer"
	"github.com/sandevgo/companion/pkg/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:          "setup",
	Short:        "Interactively create the runtime .env file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		// run wizard (includes save step)
		state, err := installer.RunWizard()
		if err != nil {
			return err
		}

		// Validate what was written the same way every command will read it
		if err := godotenv.Load(state.EnvPath); err != nil {
			logger.Warn().Err(err).Str("path", state.EnvPath).Msg("failed to load .env file")
		}
		if _, err := config.NewAppConfig(ctx); err != nil {
			logger.Warn().Err(err).Msg("saved configuration is incomplete")
		}

		logger.Info().Str("path", state.EnvPath).Msg("setup complete, try 'companion compare \"I failed my test\"'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
