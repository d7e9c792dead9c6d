// Package mimetypes resolves file extensions to MIME types.
//
// A Registry layers a small set of overrides on top of the built-in
// extension table shipped with Fiber (which in turn consults Go's mime
// package and the system mime.types files). The registry is built once at
// startup and never mutated, so it can be shared by every request handler
// without locking.
//
// # Defaults
//
// The default overrides cover the linked-data and music-encoding formats
// served as test fixtures:
//
//	.jsonld -> application/ld+json
//	.ttl    -> text/turtle
//	.mei    -> appliction/xml
//
// # Usage
//
//	reg, err := mimetypes.New(cfg.Mime)
//	typ := reg.TypeByFilename("scores/sample.mei")
//	if typ == "" {
//	    // unsupported
//	}
package mimetypes
