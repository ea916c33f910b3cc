// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	"github.com/hazadus/go-playlist/internal/tui/player"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// PlayerScreen - экран текущего трека
	PlayerScreen
	// EditorScreen - экран добавления трека
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	manager        *track.Manager
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	playerModel    *player.Model
	editorModel    *editor.Model
	width, height  int
}

// NewMainModel создает новую главную модель
func NewMainModel(manager *track.Manager) *MainModel {
	return &MainModel{
		manager:        manager,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(manager),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.TrackSelectedMsg:
		m.currentScreen = PlayerScreen
		m.playerModel = player.NewModel(m.manager.Playlist(), msg.Track)
		return m, m.resize(m.playerModel.Init())

	case tracklist.AddTrackMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.manager)
		return m, m.resize(m.editorModel.Init())

	case player.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.playerModel = nil
		m.tracklistModel.RefreshData()
		return m, nil

	case editor.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		return m, nil

	case editor.TrackSavedMsg:
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		m.tracklistModel.RefreshData()
		m.tracklistModel.SetStatus("✅ Добавлен трек: " + msg.Track.String())
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	return m, m.forward(msg)
}

// forward передает сообщение активной модели
func (m *MainModel) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case PlayerScreen:
		if m.playerModel != nil {
			var updated tea.Model
			updated, cmd = m.playerModel.Update(msg)
			if playerModel, ok := updated.(*player.Model); ok {
				m.playerModel = playerModel
			}
		}
	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}
	return cmd
}

// resize сообщает новому экрану известный размер окна
func (m *MainModel) resize(cmd tea.Cmd) tea.Cmd {
	if m.width == 0 && m.height == 0 {
		return cmd
	}
	return tea.Batch(cmd, m.forward(tea.WindowSizeMsg{Width: m.width, Height: m.height}))
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель плеера не инициализирована"

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// Screen возвращает текущий экран
func (m *MainModel) Screen() ScreenType {
	return m.currentScreen
}
