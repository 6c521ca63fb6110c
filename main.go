package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"memorybot/bot"
	"memorybot/config"
	"memorybot/discord"
	"memorybot/memory"
	"memorybot/provider"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		settingsPath string
		debug        bool
	)

	root := &cobra.Command{
		Use:     "memorybot",
		Short:   "Discord bot that answers with a shared memory",
		Version: Version,
		Long: `memorybot connects to Discord and answers prefixed commands with
chat completions that see a shared key/value memory.

Settings are read from ~/.config/memorybot/settings.toml, then .env in the
working directory, then the environment. DISCORD_TOKEN and an API key
(MEMORYBOT_API_KEY or OPENAI_API_KEY) must come from the environment.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), settingsPath, debug)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	root.Flags().StringVarP(&settingsPath, "config", "c", "", "path to settings.toml (default ~/.config/memorybot/settings.toml)")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newInitConfigCmd())
	return root
}

func newInitConfigCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a commented default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.GetSettingsFilePath()
			}
			path = config.ExpandPath(path)

			created, err := config.CreateDefaultSettings(path)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "Settings already exist at %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "where to write settings.toml")
	return cmd
}

func run(parent context.Context, settingsPath string, debug bool) error {
	cfg, err := config.Load(config.ExpandPath(settingsPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.Debug = true
	}

	logger := config.NewLogger(cfg, os.Stderr)

	store, err := memory.NewClient(cfg.MemoryEndpoint, nil)
	if err != nil {
		return err
	}

	llm, err := provider.InitializeProvider(cfg)
	if err != nil {
		return err
	}

	gateway, err := discord.NewGateway(cfg.DiscordToken, logger)
	if err != nil {
		return err
	}

	b, err := bot.New(bot.Options{
		Memory:    store,
		Provider:  llm,
		Transport: gateway,
		Settings: bot.Settings{
			Prefix:     cfg.Prefix,
			ReplyLimit: cfg.ReplyLimit,
			Persona:    cfg.Persona,
			SyncKey:    cfg.SyncKey,
			Models:     provider.ModelNames(cfg),
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	settings := b.Settings()
	logger.WithFields(logrus.Fields{
		"version":     Version,
		"provider":    llm.Name(),
		"memory":      store.Endpoint(),
		"prefix":      settings.Prefix,
		"reply_limit": settings.ReplyLimit,
	}).Info("Starting memorybot")

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gateway.Run(ctx, b); err != nil {
		return err
	}
	logger.Info("Shut down cleanly")
	return nil
}
