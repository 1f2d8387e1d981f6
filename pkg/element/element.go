// Package element loads the meshes that are arrayed along a strip, either
// from STL files or rendered from OpenSCAD sources.
package element

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/philipparndt/gospline/pkg/openscad"
	"github.com/philipparndt/gospline/pkg/stl"
)

// Loader reads element meshes. The zero value uses openscad from PATH and
// discards log output.
type Loader struct {
	// OpenSCAD overrides the openscad executable
	OpenSCAD string
	Log      *zap.Logger
}

func (l Loader) renderer(path string) *openscad.Renderer {
	r := openscad.NewRenderer(filepath.Dir(path), l.Log)
	if l.OpenSCAD != "" {
		r.Binary = l.OpenSCAD
	}
	return r
}

// Load reads the element at path. Models without a name are named after the file.
func (l Loader) Load(ctx context.Context, path string) (*stl.Model, error) {
	var (
		model *stl.Model
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		model, err = stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
	case ".scad":
		model, err = l.renderer(path).Render(ctx, path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported element type: %s (expected .stl or .scad)", ext)
	}

	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return model, nil
}

// Sources returns the files whose changes affect the element at path: the
// file itself and, for OpenSCAD, everything it uses or includes.
func (l Loader) Sources(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".scad") {
		return l.renderer(path).ResolveDependencies(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return []string{abs}, nil
}
