package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"fixture-server/core/storage"
)

// ErrNotFound is returned when a fixture does not exist or its name is not
// a valid relative path.
var ErrNotFound = errors.New("fixture not found")

// Object is an opened fixture. Callers must close Body.
type Object struct {
	Body    io.ReadCloser
	Size    int64
	ModTime time.Time
}

// Source provides fixture content by name.
type Source interface {
	// Open returns the fixture called name, or ErrNotFound.
	Open(ctx context.Context, name string) (*Object, error)
	// List returns the names of all fixtures, sorted.
	List(ctx context.Context) ([]string, error)
}

// New creates the Source selected by cfg.Driver. The client is only used by
// the s3 driver and may be nil otherwise.
func New(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Driver {
	case DriverLocal:
		return NewLocalDir(cfg.TestDir), nil
	case DriverS3:
		if client == nil {
			return nil, errors.New("s3 driver requires a storage client")
		}
		return NewBucket(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown content driver %q", cfg.Driver)
	}
}

// ValidName reports whether name may be looked up in a Source.
func ValidName(name string) bool {
	return name != "." && fs.ValidPath(name)
}
