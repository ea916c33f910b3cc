// Package ingest разбирает файлы массового импорта треков формата
// "title,artist,mood" и открывает источники таких файлов
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hazadus/go-playlist/internal/data"
)

// ErrMalformedRecord возвращается для строки, которую нельзя импортировать
var ErrMalformedRecord = errors.New("некорректная запись")

// maxLineLength ограничивает длину строки импорта
const maxLineLength = 64 * 1024

// Rejection описывает отклоненную строку
type Rejection struct {
	Line int
	Raw  string
	Err  error
}

// Report содержит итог импорта
type Report struct {
	Added    int
	Rejected []Rejection
}

// ParseLine разбирает одну строку. Строка делится по первым двум запятым,
// настроение - весь остаток строки.
func ParseLine(line string) (data.Track, error) {
	line = strings.TrimRight(line, "\r\n")

	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 3 {
		return data.Track{}, fmt.Errorf("ожидалось 3 поля, получено %d: %w", len(parts), ErrMalformedRecord)
	}

	track, err := data.NewTrack(parts[0], parts[1], parts[2])
	if err != nil {
		return data.Track{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return track, nil
}

// Load читает поток построчно и передает каждый корректный трек в add.
// Некорректные строки пропускаются и попадают в отчет. Ошибка чтения
// прерывает импорт, возвращая частичный отчет.
func Load(r io.Reader, add func(data.Track)) (*Report, error) {
	report := &Report{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		track, err := ParseLine(raw)
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Line: lineNo, Raw: raw, Err: err})
			continue
		}

		add(track)
		report.Added++
	}

	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("ошибка чтения строки %d: %w", lineNo+1, err)
	}
	return report, nil
}
