package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath, importSource, scanDir string

	rootCmd := &cobra.Command{
		Use:   "playlist",
		Short: "A console music playlist",
		Long:  `A console music playlist with circular playback, title search and shuffled mode for premium users.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.prepare(ctx, configPath, importSource, scanDir)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runMenu(ctx)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file")
	flags.StringVar(&importSource, "import", "", "preload tracks from a CSV source (file, http(s):// or s3://)")
	flags.StringVar(&scanDir, "scan", "", "preload tracks from audio file tags in a directory")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createMenuCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createCheckCommand(ctx))

	return rootCmd
}
