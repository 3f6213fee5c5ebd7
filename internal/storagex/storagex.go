// Package storagex stores uploaded media and returns public references.
package storagex

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"foodgram-api/internal/config"
	"foodgram-api/internal/logx"
)

var storageLogger = logx.GetScope("storage")

// Store saves image bytes under a key and returns the public URL path.
type Store interface {
	Save(ctx context.Context, key string, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// New picks S3 when a bucket is configured, local directory otherwise.
func New(cfg *config.Config) (Store, error) {
	if cfg.Media.S3Bucket != "" {
		return newS3Store(cfg)
	}
	return newLocalStore(cfg.Media.Dir, cfg.Media.PublicPrefix)
}

type s3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func newS3Store(cfg *config.Config) (*s3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Media.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Media.S3AccessKey, cfg.Media.S3SecretKey, ""),
		),
	}
	if cfg.Media.S3Endpoint != "" {
		endpoint := cfg.Media.S3Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint}, nil
		})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	return &s3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Media.S3Bucket,
		prefix: strings.TrimSuffix(cfg.Media.PublicPrefix, "/"),
	}, nil
}

func (s *s3Store) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.prefix + "/" + key, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		storageLogger.Sugar().Warnf("delete object %s: %v", key, err)
	}
	return err
}

type localStore struct {
	dir    string
	prefix string
}

func newLocalStore(dir, prefix string) (*localStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &localStore{dir: dir, prefix: strings.TrimSuffix(prefix, "/")}, nil
}

func (s *localStore) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.prefix + "/" + key, nil
}

func (s *localStore) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
}
