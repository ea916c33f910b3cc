package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/s3"
)

func collect(t *testing.T, o *Opener, source string) ([]data.Track, *Report) {
	t.Helper()
	var tracks []data.Track
	report, err := o.LoadSource(context.Background(), source, func(tr data.Track) {
		tracks = append(tracks, tr)
	})
	require.NoError(t, err)
	return tracks, report
}

func TestOpenerLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,X,happy\nB,Y,sad\n"), 0644))

	tracks, report := collect(t, &Opener{}, path)

	assert.Equal(t, 2, report.Added)
	assert.Equal(t, "B", tracks[1].Title)
}

func TestOpenerMissingFile(t *testing.T) {
	_, err := (&Opener{}).Open(context.Background(), "/non/existent/music.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenerHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/music.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "A,X,happy\n")
	}))
	defer srv.Close()

	tracks, report := collect(t, &Opener{HTTPClient: srv.Client()}, srv.URL+"/music.csv")
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, "A", tracks[0].Title)

	_, err := (&Opener{}).Open(context.Background(), srv.URL+"/missing.csv")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestOpenerS3(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/music/lists/music.csv" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<Error><Code>NoSuchKey</Code><Message>nope</Message></Error>`)
			return
		}
		_, _ = io.WriteString(w, "A,X,happy\nbad\n")
	}))
	defer srv.Close()

	o := &Opener{S3: &s3.Config{
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  srv.URL,
	}}

	tracks, report := collect(t, o, "s3://music/lists/music.csv")
	assert.Equal(t, 1, report.Added)
	assert.Len(t, report.Rejected, 1)
	assert.Equal(t, "X", tracks[0].Artist)

	_, err := o.Open(context.Background(), "s3://music/other.csv")
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	_, err = o.Open(context.Background(), "s3://music")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "music.csv"), expandHome("~/music.csv"))
	assert.Equal(t, "music.csv", expandHome("music.csv"))
}
