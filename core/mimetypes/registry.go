package mimetypes

import (
	"fmt"
	"mime"
	"path"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2/utils"
)

// octetStream is what the built-in table answers for extensions it does not know.
const octetStream = "application/octet-stream"

// encodingSuffixes are compression extensions that say how a file is
// encoded rather than what it contains.
var encodingSuffixes = map[string]bool{
	".gz":  true,
	".z":   true,
	".bz2": true,
	".xz":  true,
	".br":  true,
}

// DefaultOverrides are registered on every Registry before configured overrides.
//
// The .mei entry is kept exactly as the visualiser's original deployment
// served it; set MIME_OVERRIDES=".mei=application/xml" to correct it.
var DefaultOverrides = map[string]string{
	".jsonld": "application/ld+json",
	".ttl":    "text/turtle",
	".mei":    "appliction/xml",
}

// Registry maps file extensions to MIME types. It is immutable once created.
type Registry struct {
	overrides map[string]string
}

// New creates a registry with DefaultOverrides plus the overrides from cfg.
func New(cfg Config) (*Registry, error) {
	extra, err := ParseOverrides(cfg.Overrides)
	if err != nil {
		return nil, err
	}
	return NewWithOverrides(extra)
}

// NewWithOverrides creates a registry with DefaultOverrides plus extra.
// Entries in extra replace defaults for the same extension.
func NewWithOverrides(extra map[string]string) (*Registry, error) {
	overrides := make(map[string]string, len(DefaultOverrides)+len(extra))
	for ext, typ := range DefaultOverrides {
		overrides[normalizeExt(ext)] = typ
	}
	for ext, typ := range extra {
		key := normalizeExt(ext)
		if key == "." {
			return nil, fmt.Errorf("invalid extension %q", ext)
		}
		if _, _, err := mime.ParseMediaType(typ); err != nil {
			return nil, fmt.Errorf("invalid mime type %q for %s: %w", typ, key, err)
		}
		overrides[key] = typ
	}
	return &Registry{overrides: overrides}, nil
}

// MustDefault returns a registry with only DefaultOverrides.
func MustDefault() *Registry {
	r, err := NewWithOverrides(nil)
	if err != nil {
		panic(err)
	}
	return r
}

// TypeByExtension returns the MIME type for ext (with or without the leading
// dot), or an empty string if it cannot be resolved.
func (r *Registry) TypeByExtension(ext string) string {
	if ext == "" || ext == "." {
		return ""
	}
	key := normalizeExt(ext)
	if typ, ok := r.overrides[key]; ok {
		return typ
	}

	typ := utils.GetMIME(key)
	if typ == "" || typ == octetStream {
		return ""
	}
	return typ
}

// TypeByFilename resolves the MIME type from the extension of a slash
// separated file name. A trailing compression suffix is skipped, so
// sample.ttl.gz resolves as text/turtle and a bare archive.gz is unresolved.
func (r *Registry) TypeByFilename(name string) string {
	ext := path.Ext(name)
	if encodingSuffixes[strings.ToLower(ext)] {
		name = strings.TrimSuffix(name, ext)
		ext = path.Ext(name)
	}
	return r.TypeByExtension(ext)
}

// Overrides returns a sorted copy of the registered overrides as ext=type pairs.
func (r *Registry) Overrides() []string {
	out := make([]string, 0, len(r.overrides))
	for ext, typ := range r.overrides {
		out = append(out, ext+"="+typ)
	}
	sort.Strings(out)
	return out
}

// ParseOverrides parses a comma separated list of ext=type pairs.
func ParseOverrides(raw string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		ext, typ, ok := strings.Cut(pair, "=")
		ext, typ = strings.TrimSpace(ext), strings.TrimSpace(typ)
		if !ok || ext == "" || typ == "" {
			return nil, fmt.Errorf("invalid mime override %q, want ext=type", pair)
		}
		out[ext] = typ
	}
	return out, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
