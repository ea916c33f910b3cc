// Package player содержит модель экрана текущего трека для TUI
package player

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/playlist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// Model представляет модель экрана текущего трека
type Model struct {
	playlist    *playlist.Playlist
	track       data.Track
	mode        playlist.Mode
	progressBar progress.Model
	error       error
	width       int
	height      int
}

// NewModel создает модель экрана для трека, на котором стоит курсор
func NewModel(p *playlist.Playlist, track data.Track) *Model {
	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 40

	return &Model{
		playlist:    p,
		track:       track,
		progressBar: prog,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(10, min(60, msg.Width-10))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "n":
			m.step(m.playlist.Next(playlist.ModeLinear))
			m.mode = playlist.ModeLinear

		case "s":
			m.step(m.playlist.Next(playlist.ModeShuffled))
			m.mode = playlist.ModeShuffled

		case "b":
			m.step(m.playlist.Previous())
		}
	}

	return m, nil
}

func (m *Model) step(t data.Track, err error) {
	if err != nil {
		m.error = err
		return
	}
	m.error = nil
	m.track = t
}

// View отображает модель
func (m *Model) View() string {
	if errors.Is(m.error, playlist.ErrEmptyPlaylist) {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("📭 Плейлист пуст"),
			errorStyle.Render(m.error.Error()),
			controlsStyle.Render("Нажмите 'q' или 'esc' для возврата"),
		)
	}

	title := titleStyle.Render("🎵 Сейчас играет")

	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎵 %s\n🎤 %s\n🌈 %s",
		m.track.Title,
		m.track.Artist,
		m.track.Mood,
	))

	statusText := statusStyle.Render(formatStatus(m.mode, m.playlist.IsPremium()))

	position, total := m.playlist.Position()
	var percent float64
	if total > 0 {
		percent = float64(position) / float64(total)
	}
	progressView := m.progressBar.ViewAs(percent)
	positionText := fmt.Sprintf("%d / %d", position, total)

	controls := controlsStyle.Render(
		"n: следующий • s: случайный • b: предыдущий • q/esc: назад к списку",
	)

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s\n%s\n\n%s",
		title,
		trackInfo,
		statusText,
		progressView,
		positionText,
		controls,
	)
}

// Track возвращает отображаемый трек
func (m *Model) Track() data.Track {
	return m.track
}

// formatStatus описывает режим, которым был выбран трек. Без премиума
// случайный режим не работает, и шаг выполняется по порядку.
func formatStatus(mode playlist.Mode, premium bool) string {
	switch {
	case mode == playlist.ModeShuffled && premium:
		return "🔀 Случайный порядок"
	case mode == playlist.ModeShuffled:
		return "➡️  По порядку (случайный порядок доступен в премиум-режиме)"
	default:
		return "➡️  По порядку"
	}
}
