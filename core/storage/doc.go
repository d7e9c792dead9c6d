// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used by the
// bucket fixture source: bucket checks, object metadata, object download and
// listing. Both AWS S3 and self-hosted MinIO instances are supported.
//
// The Client interface makes it easy to mock storage interactions in unit
// tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := client.StatObject(ctx, "fixtures", "static/test/sample.ttl", minio.StatObjectOptions{})
//	if storage.IsNotFound(err) {
//	    // 404
//	}
package storage
