package port

import (
	"context"
	"io"
	"time"
)

// PutObjectInput describes one object written to the asset store.
type PutObjectInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts the object store holding business assets.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) (location string, err error)
	Delete(ctx context.Context, bucket, key string) error
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
