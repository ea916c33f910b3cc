package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/s3"
	"github.com/hazadus/go-playlist/internal/streaming"
)

// ErrSourceUnavailable возвращается, если источник импорта нельзя открыть
var ErrSourceUnavailable = errors.New("источник недоступен")

// Opener открывает источники импорта: локальные файлы, HTTP(S) и S3
type Opener struct {
	S3         *s3.Config
	HTTPClient *http.Client
}

// Open открывает источник на чтение
func (o *Opener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	rc, err := o.open(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrSourceUnavailable, err)
	}
	return rc, nil
}

func (o *Opener) open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case s3.IsURI(source):
		return o.openS3(ctx, source)
	case streaming.IsURL(source):
		return streaming.NewReader(ctx, o.HTTPClient, source, streaming.DefaultBufferSize)
	default:
		return os.Open(expandHome(source))
	}
}

func (o *Opener) openS3(ctx context.Context, source string) (io.ReadCloser, error) {
	bucket, key, err := s3.ParseURI(source)
	if err != nil {
		return nil, err
	}

	cfg := o.S3
	if cfg == nil {
		cfg = &s3.Config{}
	}
	client, err := s3.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client.Open(ctx, bucket, key)
}

// LoadSource открывает источник и импортирует его содержимое
func (o *Opener) LoadSource(ctx context.Context, source string, add func(data.Track)) (*Report, error) {
	rc, err := o.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Load(rc, add)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return strings.Replace(path, "~", home, 1)
}
