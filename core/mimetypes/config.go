package mimetypes

// Config holds configuration for the MIME type registry.
type Config struct {
	// Overrides is a comma separated list of ext=type pairs applied on top of
	// the default overrides, e.g. ".mei=application/xml,.rdf=application/rdf+xml".
	Overrides string `mapstructure:"overrides" default:""`
}
