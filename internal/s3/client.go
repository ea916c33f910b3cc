// Package s3 предоставляет чтение файлов импорта из Amazon S3
// и совместимых хранилищ
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Scheme - префикс адресов объектов S3
const Scheme = "s3"

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// Client обертка для S3 клиента
type Client struct {
	s3Client *s3.S3
	config   *Config
}

// NewClient создает новый S3 клиент
func NewClient(config *Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}

	if config.AccessKey != "" || config.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		)
	}

	// Если указан endpoint (MinIO и т.п.), используем path-style адреса
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// Open открывает объект на чтение. Пустой bucket заменяется бакетом
// из конфигурации.
func (c *Client) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if bucket == "" {
		bucket = c.config.BucketName
	}
	if bucket == "" {
		return nil, fmt.Errorf("не указан бакет для ключа %s", key)
	}

	out, err := c.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения s3://%s/%s: %w", bucket, key, err)
	}

	return out.Body, nil
}

// ParseURI разбирает адрес вида s3://bucket/key. Адрес s3:///key
// означает бакет по умолчанию.
func ParseURI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("неверный адрес S3: %w", err)
	}
	if u.Scheme != Scheme {
		return "", "", fmt.Errorf("неверная схема адреса S3: %q", u.Scheme)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("в адресе %s не указан ключ", uri)
	}
	return u.Host, key, nil
}

// IsURI проверяет, что источник является адресом S3
func IsURI(source string) bool {
	return strings.HasPrefix(source, Scheme+"://")
}
