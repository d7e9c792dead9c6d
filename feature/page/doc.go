// Package page renders the visualiser's single HTML page.
//
// The page is the html/template index.html from the templates directory,
// rendered with the sprig function library. In debug mode the template is
// parsed on every request so edits show up without a restart; otherwise the
// first successful parse is cached.
//
// # HTTP Endpoints
//
//   - GET / : Renders index.html. 500 if the template is missing or broken.
package page
