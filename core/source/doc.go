// Package source resolves fixture names to their content.
//
// A Source hides where the test fixture files live. Two drivers exist:
//
//   - local: a directory on disk (or any fs.FS, which tests use with fstest.MapFS)
//   - s3: objects below a key prefix in an S3/MinIO bucket
//
// Names are slash separated paths relative to the fixture root. Names that are
// empty, absolute, or contain "." or ".." elements never reach the backend and
// are reported as ErrNotFound, as are directories and missing entries.
package source
