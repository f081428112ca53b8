package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/companion/internal/config"
	"github.com/sandevgo/companion/internal/core"
	"github.com/sandevgo/companion/internal/providers/llm"
	"github.com/sandevgo/companion/internal/service/companion"
	"github.com/sandevgo/companion/internal/service/memory"
	"github.com/sandevgo/companion/internal/service/personality"
	"github.com/sandevgo/companion/pkg/log"
	"github.com/sandevgo/companion/pkg/tokens"
)

type companionOptions struct {
	transcriptPath string
	emptyFallback  bool
}

// NewCompanion loads configuration, builds the model client and wires the
// extractor and engine around the selected conversation. Configuration
// problems are returned before any model call is made.
func NewCompanion(ctx context.Context, opts companionOptions) (*companion.Companion, error) {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, err
	}

	appCfg, err := config.NewAppConfig(ctx)
	if err != nil {
		return nil, err
	}

	conversation, err := loadConversation(opts.transcriptPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("messages", len(conversation)).Msg("conversation loaded")

	ai, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		return nil, err
	}

	extractorOpts := []memory.Option{}
	if opts.emptyFallback || appCfg.UseEmptyFallback() {
		extractorOpts = append(extractorOpts, memory.WithFallback(memory.EmptyFallback()))
	}
	if debug || config.IsDebug() {
		extractorOpts = append(extractorOpts, memory.WithTokenCounter(tokens.NewCounter()))
	}

	return companion.New(
		memory.NewExtractor(ai, extractorOpts...),
		personality.NewEngine(ai),
		conversation,
	), nil
}

func loadConversation(path string) ([]core.Message, error) {
	if path == "" {
		return memory.SampleConversation()
	}
	return memory.LoadTranscript(path)
}

// initEnv loads <runtime>/.env and then ./.env. Variables already set win.
func initEnv(ctx context.Context, runtimePath string) error {
	for _, envFile := range []string{filepath.Join(runtimePath, ".env"), ".env"} {
		if err := loadEnvFile(ctx, envFile); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
