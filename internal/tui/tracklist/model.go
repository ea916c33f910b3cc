// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackSelectedMsg отправляется при выборе трека для воспроизведения
type TrackSelectedMsg struct {
	Track data.Track
}

// AddTrackMsg отправляется при запросе формы добавления трека
type AddTrackMsg struct{}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	position int
	track    data.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.track.Title, i.track.Artist, i.track.Mood)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Номер | Название | Исполнитель | Настроение
	str := fmt.Sprintf("%-4d %s %s %s",
		i.position,
		utils.PadRight(i.track.Title, 40),
		utils.PadRight(i.track.Artist, 24),
		utils.TruncateString(i.track.Mood, 16))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list         list.Model
	trackManager *track.Manager
	status       string
	quitting     bool
}

// NewModel создает новую модель списка треков
func NewModel(trackManager *track.Manager) *Model {
	l := list.New(items(trackManager.ListTracks()), trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:         l,
		trackManager: trackManager,
	}
}

func items(tracks []data.Track) []list.Item {
	return lo.Map(tracks, func(t data.Track, i int) list.Item {
		return trackItem{position: i + 1, track: t}
	})
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	m.list.SetItems(items(m.trackManager.ListTracks()))
}

// SetStatus задает строку состояния под списком
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для справки и статуса
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				current, err := m.trackManager.PlayFrom(item.track.Title)
				if err != nil {
					m.status = "❌ " + err.Error()
					return m, nil
				}
				return m, func() tea.Msg {
					return TrackSelectedMsg{Track: current}
				}
			}
			return m, nil

		case "a":
			return m, func() tea.Msg {
				return AddTrackMsg{}
			}

		case "d":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				m.deleteTrack(item.track)
			}
			return m, nil

		case "p":
			m.trackManager.Playlist().GrantPremium()
			m.status = "⭐ Премиум-режим включен"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) deleteTrack(t data.Track) {
	err := m.trackManager.DeleteTrack(t.Title)
	switch {
	case errors.Is(err, playlist.ErrNotFound), errors.Is(err, playlist.ErrEmptyPlaylist):
		m.status = "❌ Трек не найден: " + t.Title
	case err != nil:
		m.status = "❌ " + err.Error()
	default:
		m.status = "🗑️  Удален трек: " + t.String()
	}
	m.RefreshData()
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	premium := ""
	if m.trackManager.Playlist().IsPremium() {
		premium = " • ⭐ премиум"
	}

	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: играть • a: добавить • d: удалить • p: премиум • /: фильтр • q: выход" + premium)
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	return view + "\n" + extraHelp
}
