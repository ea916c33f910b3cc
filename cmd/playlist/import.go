package main

import (
	"context"
	"fmt"

	"github.com/hazadus/go-playlist/internal/ingest"
)

// importTracks загружает треки из CSV источника в плейлист
func (app *Application) importTracks(ctx context.Context, source string) {
	fmt.Fprintf(app.out, "📥 Импортируем треки из %s\n", source)

	report, err := app.Opener.LoadSource(ctx, source, app.Playlist.Add)
	if report != nil {
		app.printReport(report)
	}
	if err != nil {
		fmt.Fprintf(app.out, "❌ Ошибка импорта: %v\n", err)
	}
}

func (app *Application) printReport(report *ingest.Report) {
	for _, r := range report.Rejected {
		fmt.Fprintf(app.out, "⚠️  Строка %d пропущена: %v\n", r.Line, r.Err)
	}
	fmt.Fprintf(app.out, "✅ Добавлено треков: %d, пропущено строк: %d\n", report.Added, len(report.Rejected))
}

// scanTracks добавляет треки по тегам аудио файлов из каталога
func (app *Application) scanTracks(dir string) {
	fmt.Fprintf(app.out, "🔎 Сканируем каталог %s\n", dir)

	tracks, skipped, err := app.Extractor.ScanDir(dir)
	if err != nil {
		fmt.Fprintf(app.out, "❌ Ошибка сканирования: %v\n", err)
		return
	}

	for _, t := range tracks {
		app.Playlist.Add(t)
	}
	for _, s := range skipped {
		fmt.Fprintf(app.out, "⚠️  Файл пропущен: %v\n", s.Err)
	}
	fmt.Fprintf(app.out, "✅ Добавлено треков: %d, пропущено файлов: %d\n", len(tracks), len(skipped))
}
