package storage

import (
	"context"
	"io"
)

type PutInput struct {
	// Key names the object. Empty means a random name with Filename's
	// extension.
	Key         string
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
