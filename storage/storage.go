package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "apuntes-app/apuntes/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type BlobStoreInterface interface {
	Upload(ctx context.Context, key string, content []byte, contentType string) (string, error)
}

// S3Store stores note attachments in an S3-compatible bucket and hands back
// durable public URLs.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func Setup(ctx context.Context, cfg appconfig.Config) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	return NewFromClient(client, cfg.S3Bucket, cfg.S3PublicURL), nil
}

// NewFromClient wraps an existing S3 client. Used by tests to plug in an
// in-memory backend.
func NewFromClient(client *s3.Client, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Upload stores content under key and returns the public retrieval URL.
func (s *S3Store) Upload(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object %q: %w", key, err)
	}
	return s.URL(key), nil
}

// URL composes the public retrieval URL for a stored key. PublicURL is the
// bucket's public base (CDN or path-style endpoint); without one the standard
// virtual-hosted S3 form is used.
func (s *S3Store) URL(key string) string {
	if s.publicURL == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}
	return s.publicURL + "/" + key
}
