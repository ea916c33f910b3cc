package streaming

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewReader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, "A,X,happy\nB,Y,sad\n")
	}))
	defer srv.Close()

	reader, err := NewReader(context.Background(), NewClient(5*time.Second), srv.URL+"/music.csv", 16)
	if err != nil {
		t.Fatalf("Ошибка открытия потока: %v", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Ошибка чтения потока: %v", err)
	}
	if string(content) != "A,X,happy\nB,Y,sad\n" {
		t.Errorf("Неожиданное содержимое: %q", content)
	}
	if reader.ContentType() != "text/csv" {
		t.Errorf("Ожидался Content-Type text/csv, получено %s", reader.ContentType())
	}
}

func TestNewReaderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewReader(context.Background(), nil, srv.URL, 0)
	if err == nil {
		t.Fatal("Ожидалась ошибка для ответа 404")
	}
}

func TestNewReaderCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "A,X,happy\n")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewReader(ctx, nil, srv.URL, 0); err == nil {
		t.Fatal("Ожидалась ошибка для отмененного контекста")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"http://example.com/music.csv", true},
		{"https://example.com/music.csv", true},
		{"music.csv", false},
		{"s3://bucket/music.csv", false},
	}

	for _, test := range tests {
		if got := IsURL(test.source); got != test.expected {
			t.Errorf("IsURL(%s) = %v; expected %v", test.source, got, test.expected)
		}
	}
}
