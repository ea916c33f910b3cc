// Package editor содержит модель формы добавления трека для TUI
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// TrackSavedMsg отправляется когда трек успешно добавлен
type TrackSavedMsg struct {
	Track data.Track
}

// GoBackMsg отправляется при отмене добавления
type GoBackMsg struct{}

// fieldType определяет тип поля формы
type fieldType int

const (
	titleField fieldType = iota
	artistField
	moodField
	numFields
)

var labels = [numFields]string{"Название:", "Исполнитель:", "Настроение:"}

// Model представляет модель формы добавления трека
type Model struct {
	trackManager *track.Manager
	inputs       []textinput.Model
	focusIndex   int
	err          string
}

// NewModel создает новую модель формы
func NewModel(trackManager *track.Manager) *Model {
	placeholders := [numFields]string{
		"Введите название трека",
		"Введите исполнителя",
		"Введите настроение",
	}

	inputs := make([]textinput.Model, numFields)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = data.MaxFieldLength
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}
	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	return &Model{
		trackManager: trackManager,
		inputs:       inputs,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.saveTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке сохранения
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveTrack()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.focus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) focus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = blurredStyle
		m.inputs[i].TextStyle = blurredStyle
	}
	return tea.Batch(cmds...)
}

// saveTrack проверяет поля и добавляет трек. При ошибке форма остается
// открытой с сообщением.
func (m *Model) saveTrack() tea.Cmd {
	t, err := m.trackManager.AddTrack(
		strings.TrimSpace(m.inputs[titleField].Value()),
		strings.TrimSpace(m.inputs[artistField].Value()),
		strings.TrimSpace(m.inputs[moodField].Value()),
	)
	if err != nil {
		m.err = describe(err)
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return TrackSavedMsg{Track: t}
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, data.ErrMissingField):
		return fmt.Sprintf("Все поля обязательны (%v)", err)
	case errors.Is(err, data.ErrFieldTooLong):
		return fmt.Sprintf("Поле длиннее %d символов (%v)", data.MaxFieldLength-1, err)
	default:
		return err.Error()
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Новый трек"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	saveButton := blurredStyle.Render("[ Добавить ]")
	if m.focusIndex == len(m.inputs) {
		saveButton = focusedStyle.Render("[ Добавить ]")
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: добавить • Esc: отмена"))

	return b.String()
}
