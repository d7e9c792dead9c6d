// Package fixtures serves the static test data files used by the visualiser.
//
// Every request resolves a MIME type from the requested file's extension
// before touching the source, so an unknown extension is always answered with
// 400 and a JSON error, whether or not the file exists.
//
// # HTTP Endpoints
//
//   - GET /static/test/<path> : Returns the fixture with its resolved Content-Type.
//     400 {"error": "File type not supported"} for unknown extensions,
//     404 for missing files, directories and paths escaping the fixture root.
//     HEAD returns the same headers without a body.
package fixtures
