package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/ingest"
	"github.com/hazadus/go-playlist/internal/metadata"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/streaming"
	"github.com/hazadus/go-playlist/internal/track"
)

// Application содержит конфигурацию и состояние приложения
type Application struct {
	Config    *config.Config
	Playlist  *playlist.Playlist
	Tracks    *track.Manager
	Opener    *ingest.Opener
	Extractor *metadata.Extractor

	in  *bufio.Reader
	out io.Writer
}

// NewApplication создает приложение с вводом и выводом меню
func NewApplication(in io.Reader, out io.Writer) *Application {
	return &Application{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// setup создает плейлист и источники импорта по конфигурации
func (app *Application) setup(cfg *config.Config) {
	app.Config = cfg
	app.Playlist = playlist.New(cfg.PlaylistOptions()...)
	if cfg.Premium {
		app.Playlist.GrantPremium()
	}
	app.Tracks = track.NewManager(app.Playlist)
	app.Opener = &ingest.Opener{
		S3:         cfg.S3Config(),
		HTTPClient: streaming.NewClient(cfg.HTTPTimeout),
	}
	app.Extractor = metadata.NewExtractor(cfg.DefaultMood)
}

// prepare загружает конфигурацию и предзагружает треки из флагов
func (app *Application) prepare(ctx context.Context, configPath, importSource, scanDir string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.setup(cfg)

	if importSource != "" {
		app.importTracks(ctx, importSource)
	}
	if scanDir != "" {
		app.scanTracks(scanDir)
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := NewApplication(os.Stdin, os.Stdout)
	rootCmd := app.createRootCommand(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
