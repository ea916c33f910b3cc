// Package metadata предоставляет функционал для создания треков плейлиста
// по тегам аудио файлов
package metadata

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-playlist/internal/data"
)

// UnknownArtist подставляется, если исполнителя определить не удалось
const UnknownArtist = "Unknown Artist"

// audioExtensions - расширения файлов, которые просматривает ScanDir
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
}

// Skipped описывает файл, который не удалось превратить в трек
type Skipped struct {
	Path string
	Err  error
}

// Extractor извлекает треки из аудио файлов
type Extractor struct {
	defaultMood string
}

// NewExtractor создает новый экстрактор. defaultMood используется,
// если в тегах нет жанра.
func NewExtractor(defaultMood string) *Extractor {
	return &Extractor{defaultMood: defaultMood}
}

// ExtractFromReader извлекает трек из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) data.Track {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultTrack(source)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultTrack(source)
	}

	track := e.getDefaultTrack(source)
	if title := strings.TrimSpace(m.Title()); title != "" {
		track.Title = title
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		track.Artist = artist
	}
	if genre := strings.TrimSpace(m.Genre()); genre != "" {
		track.Mood = genre
	}
	return track
}

// TrackFromFile извлекает трек из файла и проверяет его поля
func (e *Extractor) TrackFromFile(filePath string) (data.Track, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return data.Track{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	track := e.ExtractFromReader(file, filePath)
	if err := track.Validate(); err != nil {
		return data.Track{}, fmt.Errorf("%s: %w", filepath.Base(filePath), err)
	}
	return track, nil
}

// ScanDir рекурсивно обходит каталог и возвращает треки в порядке путей.
// Файлы с некорректными полями пропускаются.
func (e *Extractor) ScanDir(dir string) ([]data.Track, []Skipped, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if audioExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка обхода каталога %s: %w", dir, err)
	}

	sort.Strings(paths)

	var tracks []data.Track
	var skipped []Skipped
	for _, path := range paths {
		track, err := e.TrackFromFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks, skipped, nil
}

// getDefaultTrack возвращает трек на основе имени файла
func (e *Extractor) getDefaultTrack(source string) data.Track {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return data.Track{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
			Mood:   e.defaultMood,
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return data.Track{
		Artist: UnknownArtist,
		Title:  nameWithoutExt,
		Mood:   e.defaultMood,
	}
}
