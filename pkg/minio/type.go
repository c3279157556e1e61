package minio

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

var (
	ErrEndpointRequired  = errors.New("minio: endpoint is required")
	ErrAccessKeyRequired = errors.New("minio: access key is required")
	ErrSecretKeyRequired = errors.New("minio: secret key is required")
)

// Config holds MinIO connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// PutRequest contains the parameters for writing an object.
type PutRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

// implObjectStore implements ObjectStore.
type implObjectStore struct {
	client    *minio.Client
	config    Config
	mu        sync.RWMutex
	connected bool
}

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" {
		return ErrAccessKeyRequired
	}
	if cfg.SecretKey == "" {
		return ErrSecretKeyRequired
	}
	return nil
}
