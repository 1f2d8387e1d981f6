package openscad

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const postSTL = `solid post
 facet normal 0 0 1
  outer loop
   vertex 0 0 0
   vertex 1 0 0
   vertex 0 1 0
  endloop
 endfacet
endsolid post
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// fakeOpenSCAD writes a shell script that behaves like openscad -o out in
func fakeOpenSCAD(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake openscad needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "openscad")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "post.scad"), "use <lib/shapes.scad>\ninclude <./config.scad>\n// use <ignored.scad>\ncube(1);\n")
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../config.scad>\nmodule rail() {}\n")
	writeFile(t, filepath.Join(dir, "config.scad"), "height = 2;\n")

	r := NewRenderer(dir, nil)
	deps, err := r.ResolveDependencies("post.scad")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "post.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "config.scad"),
	}, deps)
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	writeFile(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewRenderer(dir, nil).ResolveDependencies(filepath.Join(dir, "a.scad"))
	require.NoError(t, err)
	assert.Len(t, deps, 2)
}

func TestResolveDependenciesMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "post.scad"), "use <missing.scad>\n")

	_, err := NewRenderer(dir, nil).ResolveDependencies("post.scad")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "post.scad"), "cube(1);\n")

	r := NewRenderer(dir, zaptest.NewLogger(t))
	r.Binary = fakeOpenSCAD(t, "cat > \"$2\" <<'EOF'\n"+postSTL+"EOF\n")

	model, err := r.Render(context.Background(), "post.scad")
	require.NoError(t, err)
	assert.Equal(t, "post", model.Name)
	assert.Equal(t, 1, model.TriangleCount())
}

func TestRenderFailure(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, nil)
	r.Binary = fakeOpenSCAD(t, "echo 'syntax error in post.scad' >&2\nexit 1\n")

	_, err := r.Render(context.Background(), "post.scad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error in post.scad")
}

func TestRenderMissingBinary(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	r.Binary = "gospline-openscad-does-not-exist"

	err := r.RenderToSTL(context.Background(), "post.scad", filepath.Join(t.TempDir(), "out.stl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
