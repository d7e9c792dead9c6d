package source

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"fixture-server/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket serves fixtures stored as objects below a key prefix.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a Source over the objects below prefix in bucket.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Check verifies that the bucket exists.
func (b *Bucket) Check(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", b.bucket)
	}
	return nil
}

func (b *Bucket) key(name string) string {
	if b.prefix == "" {
		return name
	}
	return path.Join(b.prefix, name)
}

func (b *Bucket) Open(ctx context.Context, name string) (*Object, error) {
	if !ValidName(name) {
		return nil, ErrNotFound
	}
	key := b.key(name)

	info, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	body, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return &Object{Body: body, Size: info.Size, ModTime: info.LastModified}, nil
}

func (b *Bucket) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{Recursive: true}
	if b.prefix != "" {
		opts.Prefix = b.prefix + "/"
	}

	var names []string
	for obj := range b.client.ListObjects(ctx, b.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list fixtures: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, opts.Prefix)
		// Folder markers end with a slash.
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
