// Package streaming содержит буферизованное чтение файлов импорта по HTTP
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultBufferSize - размер буфера чтения по умолчанию
const DefaultBufferSize = 64 * 1024

// Reader представляет буферизованный HTTP поток
type Reader struct {
	reader *bufio.Reader
	resp   *http.Response
}

// NewClient создает HTTP клиент с таймаутами соединения.
// timeout ограничивает весь запрос; 0 означает без ограничения.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
}

// NewReader выполняет GET запрос и возвращает поток тела ответа
func NewReader(ctx context.Context, client *http.Client, url string, bufferSize int) (*Reader, error) {
	if client == nil {
		client = NewClient(0)
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", "go-playlist/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		reader: bufio.NewReaderSize(resp.Body, bufferSize),
		resp:   resp,
	}, nil
}

// Read реализует интерфейс io.Reader
func (sr *Reader) Read(p []byte) (n int, err error) {
	return sr.reader.Read(p)
}

// Close закрывает соединение
func (sr *Reader) Close() error {
	return sr.resp.Body.Close()
}

// ContentType возвращает тип содержимого ответа
func (sr *Reader) ContentType() string {
	return sr.resp.Header.Get("Content-Type")
}

// IsURL проверяет, что источник является HTTP(S) адресом
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
