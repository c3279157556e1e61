package minio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the object storage interface used by the pipeline. Batch
// files and cropped images are written by object name; a second put with the
// same name replaces the object, which gives the overwrite-by-key semantics
// the extractors rely on.
type ObjectStore interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucketName string) error
	PutObject(ctx context.Context, req *PutRequest) (*ObjectInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error)
	RemoveObject(ctx context.Context, bucketName, objectName string) error
	Close() error
}

// NewObjectStore creates a new MinIO-backed ObjectStore.
func NewObjectStore(cfg Config) (ObjectStore, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implObjectStore{
		client: client,
		config: cfg,
	}, nil
}
