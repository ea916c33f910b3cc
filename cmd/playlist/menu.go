package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

const menuItems = `1. Добавить трек
2. Импортировать треки из CSV
3. Удалить трек
4. Показать плейлист
5. Найти трек
6. Включить премиум-режим
7. Следующий трек
8. Предыдущий трек
9. Выход`

// createMenuCommand создает команду menu с привязкой к экземпляру приложения
func (app *Application) createMenuCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the numbered interactive menu",
		Long:  `Run the numbered interactive menu: add, import, remove, display, search, premium, next, previous, exit.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runMenu(ctx)
		},
	}
}

// runMenu выполняет цикл меню до выбора выхода, конца ввода или отмены
// контекста
func (app *Application) runMenu(ctx context.Context) error {
	defer app.Playlist.Close()

	for ctx.Err() == nil {
		fmt.Fprintln(app.out)
		fmt.Fprintln(app.out, bannerStyle.Render("🎵 Плейлист"))
		fmt.Fprintln(app.out, menuItems)

		choice, ok := app.prompt("Выберите пункт: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			app.addTrack()
		case "2":
			app.importPrompt(ctx)
		case "3":
			app.removeTrack()
		case "4":
			app.displayTracks()
		case "5":
			app.searchTrack()
		case "6":
			app.grantPremium()
		case "7":
			app.nextTrack()
		case "8":
			app.previousTrack()
		case "9":
			fmt.Fprintln(app.out, "👋 До встречи!")
			return nil
		default:
			fmt.Fprintf(app.out, "❌ Неизвестный пункт меню: %s\n", choice)
		}
	}
	return nil
}

// prompt выводит приглашение и читает строку без символов конца строки.
// Возвращает false, если ввод закончился.
func (app *Application) prompt(label string) (string, bool) {
	fmt.Fprint(app.out, label)
	line, err := app.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (app *Application) addTrack() {
	title, ok := app.prompt("Название: ")
	if !ok {
		return
	}
	artist, ok := app.prompt("Исполнитель: ")
	if !ok {
		return
	}
	mood, ok := app.prompt("Настроение: ")
	if !ok {
		return
	}

	t, err := app.Tracks.AddTrack(title, artist, mood)
	if err != nil {
		fmt.Fprintf(app.out, "❌ Ошибка: %v\n", err)
		return
	}
	fmt.Fprintf(app.out, "✅ Трек добавлен: %s\n", t)
}

func (app *Application) importPrompt(ctx context.Context) {
	source, ok := app.prompt(fmt.Sprintf("Источник [%s]: ", app.Config.ImportSource))
	if !ok {
		return
	}
	if strings.TrimSpace(source) == "" {
		source = app.Config.ImportSource
	}
	app.importTracks(ctx, strings.TrimSpace(source))
}

func (app *Application) removeTrack() {
	title, ok := app.prompt("Название трека для удаления: ")
	if !ok {
		return
	}

	err := app.Tracks.DeleteTrack(title)
	switch {
	case errors.Is(err, playlist.ErrEmptyPlaylist):
		fmt.Fprintln(app.out, "📭 Плейлист пуст")
	case errors.Is(err, playlist.ErrNotFound):
		fmt.Fprintf(app.out, "❌ Трек не найден: %s\n", title)
	case err != nil:
		fmt.Fprintf(app.out, "❌ Ошибка: %v\n", err)
	default:
		fmt.Fprintf(app.out, "🗑️  Трек удален: %s\n", title)
	}
}

// displayTracks выводит треки таблицей. Текущий трек отмечен ▶.
func (app *Application) displayTracks() {
	if app.Playlist.IsEmpty() {
		fmt.Fprintln(app.out, "📭 Плейлист пуст")
		return
	}

	current, _ := app.Playlist.Position()

	t := table.NewWriter()
	t.SetOutputMirror(app.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "#", "Название", "Исполнитель", "Настроение"})

	i := 0
	for _, tr := range app.Playlist.All() {
		i++
		marker := ""
		if i == current {
			marker = "▶"
		}
		t.AppendRow(table.Row{
			marker,
			i,
			utils.TruncateString(tr.Title, 40),
			utils.TruncateString(tr.Artist, 30),
			utils.TruncateString(tr.Mood, 20),
		})
	}
	t.Render()

	fmt.Fprintf(app.out, "📚 Всего треков: %d\n", i)
}

func (app *Application) searchTrack() {
	title, ok := app.prompt("Название трека для поиска: ")
	if !ok {
		return
	}

	t, err := app.Playlist.Search(title)
	switch {
	case errors.Is(err, playlist.ErrEmptyPlaylist):
		fmt.Fprintln(app.out, "📭 Плейлист пуст")
	case err != nil:
		fmt.Fprintf(app.out, "❌ Трек не найден: %s\n", title)
	default:
		fmt.Fprintf(app.out, "🔍 Найден трек: %s, настроение: %s\n", t, t.Mood)
	}
}

func (app *Application) grantPremium() {
	app.Playlist.GrantPremium()
	fmt.Fprintln(app.out, "⭐ Премиум-режим включен")
}

func (app *Application) nextTrack() {
	mode := playlist.ModeLinear
	if app.Playlist.IsPremium() {
		answer, ok := app.prompt("Режим (1 - по порядку, 2 - случайно): ")
		if !ok {
			return
		}
		mode = playlist.ParseMode(strings.TrimSpace(answer))
	}

	t, err := app.Playlist.Next(mode)
	app.reportPlaying("▶️ ", t, err)
}

func (app *Application) previousTrack() {
	t, err := app.Playlist.Previous()
	app.reportPlaying("◀️ ", t, err)
}

func (app *Application) reportPlaying(icon string, t data.Track, err error) {
	if errors.Is(err, playlist.ErrEmptyPlaylist) {
		fmt.Fprintln(app.out, "📭 Плейлист пуст")
		return
	}
	if err != nil {
		fmt.Fprintf(app.out, "❌ Ошибка: %v\n", err)
		return
	}
	position, total := app.Playlist.Position()
	fmt.Fprintf(app.out, "%s Сейчас играет: %s [%s] (%d/%d)\n", icon, t, t.Mood, position, total)
}
