package mimetypes_test

import (
	"strings"
	"testing"

	"fixture-server/core/mimetypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DefaultOverrides(t *testing.T) {
	reg := mimetypes.MustDefault()

	tests := []struct {
		name string
		file string
		want string
	}{
		{"JSONLD", "sample.jsonld", "application/ld+json"},
		{"Turtle", "sample.ttl", "text/turtle"},
		{"MEI", "sample.mei", "appliction/xml"},
		{"Nested", "scores/bach/sample.mei", "appliction/xml"},
		{"UpperCase", "SAMPLE.TTL", "text/turtle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.TypeByFilename(tt.file))
		})
	}
}

func TestRegistry_BuiltinFallback(t *testing.T) {
	reg := mimetypes.MustDefault()

	assert.True(t, strings.HasPrefix(reg.TypeByFilename("index.html"), "text/html"))
	assert.True(t, strings.HasPrefix(reg.TypeByExtension(".json"), "application/json"))
	assert.True(t, strings.HasPrefix(reg.TypeByExtension("png"), "image/png"))
}

func TestRegistry_Unresolved(t *testing.T) {
	reg := mimetypes.MustDefault()

	assert.Empty(t, reg.TypeByFilename("sample.xyz123"))
	assert.Empty(t, reg.TypeByFilename("sample.unknownext"))
	assert.Empty(t, reg.TypeByFilename("README"))
	assert.Empty(t, reg.TypeByFilename("dir.d/"))
	assert.Empty(t, reg.TypeByExtension(""))
	assert.Empty(t, reg.TypeByExtension("."))
}

func TestRegistry_CompressedFiles(t *testing.T) {
	reg := mimetypes.MustDefault()

	tests := []struct {
		name string
		file string
		want string
	}{
		{"Gzip", "sample.ttl.gz", "text/turtle"},
		{"Brotli", "scores/sample.mei.br", "appliction/xml"},
		{"UpperCase", "sample.JSONLD.XZ", "application/ld+json"},
		{"Bzip2", "sample.jsonld.bz2", "application/ld+json"},
		{"BareArchive", "archive.gz", ""},
		{"UnknownInner", "sample.xyz123.gz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.TypeByFilename(tt.file))
		})
	}
}

func TestRegistry_ConfiguredOverrides(t *testing.T) {
	reg, err := mimetypes.New(mimetypes.Config{Overrides: ".mei=application/xml, rdf=application/rdf+xml"})
	require.NoError(t, err)

	assert.Equal(t, "application/xml", reg.TypeByFilename("sample.mei"))
	assert.Equal(t, "application/rdf+xml", reg.TypeByFilename("graph.rdf"))
	assert.Equal(t, "text/turtle", reg.TypeByFilename("graph.ttl"))
}

func TestRegistry_ConfiguredOverridesDoNotLeak(t *testing.T) {
	_, err := mimetypes.New(mimetypes.Config{Overrides: ".mei=application/xml"})
	require.NoError(t, err)

	assert.Equal(t, "appliction/xml", mimetypes.MustDefault().TypeByFilename("sample.mei"))
	assert.Equal(t, "appliction/xml", mimetypes.DefaultOverrides[".mei"])
}

func TestRegistry_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"MissingType", ".mei="},
		{"MissingSeparator", ".mei"},
		{"BadMediaType", ".mei=not a type"},
		{"EmptyExtension", "=text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mimetypes.New(mimetypes.Config{Overrides: tt.raw})
			assert.Error(t, err)
		})
	}
}

func TestRegistry_Overrides(t *testing.T) {
	reg := mimetypes.MustDefault()
	assert.Equal(t, []string{
		".jsonld=application/ld+json",
		".mei=appliction/xml",
		".ttl=text/turtle",
	}, reg.Overrides())
}

func TestParseOverrides(t *testing.T) {
	got, err := mimetypes.ParseOverrides(" .a=text/a ,, .b = text/b ")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{".a": "text/a", ".b": "text/b"}, got)

	got, err = mimetypes.ParseOverrides("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
