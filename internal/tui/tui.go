// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	manager *track.Manager
	options []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(p *playlist.Playlist, options ...tea.ProgramOption) *App {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &App{
		manager: track.NewManager(p),
		options: options,
	}
}

// Run запускает TUI приложение и блокируется до выхода из него
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.manager)

	p := tea.NewProgram(model, tuiApp.options...)
	_, err := p.Run()
	return err
}
