// Package integrity checks that the fixture set can be served.
//
// A fixture whose extension has no MIME type is answered with 400 by the
// fixtures endpoint, which usually means a file was added with a typo in its
// extension or a format needs a MIME override.
//
// # HTTP Endpoints
//
//   - GET /integrity/fixtures : Lists fixtures and reports unsupported ones.
package integrity
