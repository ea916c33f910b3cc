// Package track содержит логику управления треками
package track

import (
	"fmt"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// Manager управляет треками плейлиста от имени интерфейса пользователя
type Manager struct {
	playlist *playlist.Playlist
}

// NewManager создает новый экземпляр Manager
func NewManager(p *playlist.Playlist) *Manager {
	return &Manager{
		playlist: p,
	}
}

// Playlist возвращает плейлист, которым управляет Manager
func (m *Manager) Playlist() *playlist.Playlist {
	return m.playlist
}

// ListTracks возвращает список всех треков
func (m *Manager) ListTracks() []data.Track {
	return m.playlist.Tracks()
}

// AddTrack проверяет поля и добавляет трек в конец плейлиста
func (m *Manager) AddTrack(title, artist, mood string) (data.Track, error) {
	t, err := data.NewTrack(title, artist, mood)
	if err != nil {
		return data.Track{}, err
	}
	m.playlist.Add(t)
	return t, nil
}

// DeleteTrack удаляет трек по названию
func (m *Manager) DeleteTrack(title string) error {
	if err := m.playlist.Remove(title); err != nil {
		return fmt.Errorf("ошибка удаления трека: %w", err)
	}
	return nil
}

// PlayFrom делает трек с указанным названием текущим и возвращает его
func (m *Manager) PlayFrom(title string) (data.Track, error) {
	if err := m.playlist.Seek(title); err != nil {
		return data.Track{}, err
	}
	t, _ := m.playlist.Current()
	return t, nil
}
