// Package data описывает запись трека плейлиста и правила ее проверки
package data

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxFieldLength ограничивает длину каждого поля трека (в символах).
// Допустимы значения строго короче этой границы.
const MaxFieldLength = 100

var (
	// ErrMissingField возвращается, если одно из полей трека пустое
	ErrMissingField = errors.New("поле не заполнено")
	// ErrFieldTooLong возвращается, если поле превышает MaxFieldLength
	ErrFieldTooLong = errors.New("поле превышает допустимую длину")
)

// Track представляет одну запись плейлиста
type Track struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
	Mood   string `yaml:"mood"`
}

// NewTrack создает трек, предварительно проверив все поля
func NewTrack(title, artist, mood string) (Track, error) {
	t := Track{Title: title, Artist: artist, Mood: mood}
	if err := t.Validate(); err != nil {
		return Track{}, err
	}
	return t, nil
}

// Validate проверяет, что все поля заполнены и не превышают границу длины
func (t Track) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", t.Title},
		{"artist", t.Artist},
		{"mood", t.Mood},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
		if utf8.RuneCountInString(f.value) >= MaxFieldLength {
			return fmt.Errorf("%s: %w", f.name, ErrFieldTooLong)
		}
	}
	return nil
}

// String возвращает трек в виде "Title by Artist"
func (t Track) String() string {
	return fmt.Sprintf("%s by %s", t.Title, t.Artist)
}
