package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Local serves fixtures from a file system tree.
type Local struct {
	fsys fs.FS
}

// NewLocal creates a Source over fsys.
func NewLocal(fsys fs.FS) *Local {
	return &Local{fsys: fsys}
}

// NewLocalDir creates a Source over the directory dir.
func NewLocalDir(dir string) *Local {
	return NewLocal(os.DirFS(dir))
}

func (l *Local) Open(_ context.Context, name string) (*Object, error) {
	if !ValidName(name) {
		return nil, ErrNotFound
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrNotFound
	}

	return &Object{Body: f, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (l *Local) List(_ context.Context) ([]string, error) {
	var names []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
