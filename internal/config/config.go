// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/s3"
)

// DefaultPath путь к файлу конфигурации по умолчанию
const DefaultPath = "~/.playlist.yaml"

// Config структура для хранения конфигурации приложения
type Config struct {
	ImportSource string        `yaml:"import_source"`
	DefaultMood  string        `yaml:"default_mood"`
	StrictSearch bool          `yaml:"strict_search"`
	PruneIndex   bool          `yaml:"prune_index"`
	ShuffleSeed  uint64        `yaml:"shuffle_seed"`
	Premium      bool          `yaml:"premium"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`

	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		ImportSource: "music.csv",
		DefaultMood:  "unknown",
		StrictSearch: true,
		PruneIndex:   true,
		HTTPTimeout:  30 * time.Second,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	config := Default()

	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	// Незаданные в файле ключи сохраняют значения по умолчанию
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
	}

	return config, nil
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}

// S3Config возвращает настройки клиента S3
func (c *Config) S3Config() *s3.Config {
	return &s3.Config{
		Region:     c.AwsRegion,
		AccessKey:  c.AwsAccessKey,
		SecretKey:  c.AwsSecretKey,
		Endpoint:   c.AwsEndpoint,
		BucketName: c.AwsBucketName,
	}
}

// PlaylistOptions возвращает опции плейлиста. Ненулевой shuffle_seed
// делает случайное воспроизведение воспроизводимым.
func (c *Config) PlaylistOptions() []playlist.Option {
	opts := []playlist.Option{
		playlist.WithStrictSearch(c.StrictSearch),
		playlist.WithIndexPruning(c.PruneIndex),
	}
	if c.ShuffleSeed != 0 {
		opts = append(opts, playlist.WithRand(rand.New(rand.NewPCG(c.ShuffleSeed, c.ShuffleSeed))))
	}
	return opts
}
