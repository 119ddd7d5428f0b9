package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"planregistry/internal/config"
)

// minioStore implements FileStore on an S3-compatible backend (MinIO, AWS S3).
// It is selected with STORAGE_DRIVER=s3 and is safe for concurrent use.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates an S3-compatible file store backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (FileStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStore{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

func (m *minioStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (FileInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Key:         key,
		Size:        info.Size,
		ContentType: contentType,
		ModifiedAt:  time.Now(),
	}, nil
}

func (m *minioStore) Open(ctx context.Context, key string) (io.ReadCloser, FileInfo, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, FileInfo{}, err
	}
	// GetObject is lazy; Stat surfaces a missing key without reading content.
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		if isMinioNotFound(err) {
			return nil, FileInfo{}, ErrNotFound
		}
		return nil, FileInfo{}, err
	}
	info := FileInfo{
		Key:         key,
		Size:        st.Size,
		ContentType: st.ContentType,
		ModifiedAt:  st.LastModified,
	}
	return obj, info, nil
}

func (m *minioStore) Remove(ctx context.Context, key string) error {
	// RemoveObject succeeds silently for missing keys, so stat first to keep
	// the FileStore not-found contract.
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isMinioNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func isMinioNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.StatusCode == 404
	}
	return false
}
