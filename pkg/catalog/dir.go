package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dir loads catalogs from an fs.FS holding one file per locale:
// <code>.json, <code>.yaml, <code>.yml, or <code>.toml. Extensions are
// probed in that order and the first existing file wins.
//
// Example structure:
//
//	en.json
//	es.yaml
//	de.toml
type Dir struct {
	fsys fs.FS
}

// NewDir creates a Dir loader over fsys.
func NewDir(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys}
}

// Load reads and decodes the catalog file for code.
// Returns ErrNotFound when no file exists for the locale and
// ErrMalformed when the file does not decode to a mapping.
func (d *Dir) Load(_ context.Context, code string) (Catalog, error) {
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		data, err := fs.ReadFile(d.fsys, code+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s%s: %w", code, ext, err)
		}
		return decode(ext, data)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, code)
}

// decode unmarshals catalog data into a tree. A document whose top level
// is not a mapping (array, scalar, null) is malformed.
func decode(ext string, data []byte) (Catalog, error) {
	var raw map[string]any
	var err error

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: unknown extension %q", ErrMalformed, ext)
	}

	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not a mapping", ErrMalformed)
	}
	return Catalog(raw), nil
}
