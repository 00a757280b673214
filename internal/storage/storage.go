package storage

import (
	"context"
	"io"
)

// Storage is the object-store surface the handlers need: one named upload
// and a reachability probe. Implemented by the MinIO client and replaced by
// FakeStorage in tests.
type Storage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Ping(ctx context.Context) error
}

type FakeStorage struct {
	UploadFn func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PingFn   func(ctx context.Context) error
}

// Upload runs the configured fake or panics.
func (f *FakeStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, key, r, size, contentType)
	}
	panic("unexpected Upload")
}

// Ping runs the configured fake or panics.
func (f *FakeStorage) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}
