package element

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/stl"
)

func TestLoadSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.stl")
	model := stl.NewModel("")
	model.AddTriangle(geometry.NewTriangleFromVertices(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	require.NoError(t, stl.Save(path, model, stl.FormatBinary))

	loaded, err := Loader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "post", loaded.Name)
	assert.Equal(t, 1, loaded.TriangleCount())

	sources, err := Loader{}.Sources(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, sources)
}

func TestLoadSCAD(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake openscad needs a POSIX shell")
	}
	dir := t.TempDir()
	source := filepath.Join(dir, "rail.scad")
	require.NoError(t, os.WriteFile(source, []byte("include <profile.scad>\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.scad"), []byte("w = 1;\n"), 0644))

	binary := filepath.Join(dir, "fake-openscad")
	script := "#!/bin/sh\nprintf 'solid\\nfacet normal 0 0 1\\nouter loop\\nvertex 0 0 0\\nvertex 1 0 0\\nvertex 0 1 0\\nendloop\\nendfacet\\nendsolid\\n' > \"$2\"\n"
	require.NoError(t, os.WriteFile(binary, []byte(script), 0755))

	loader := Loader{OpenSCAD: binary}
	model, err := loader.Load(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, "rail", model.Name)
	assert.Equal(t, 1, model.TriangleCount())

	sources, err := loader.Sources(source)
	require.NoError(t, err)
	assert.Equal(t, []string{source, filepath.Join(dir, "profile.scad")}, sources)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Loader{}.Load(context.Background(), "post.obj")
	assert.ErrorContains(t, err, "unsupported element type")
}
