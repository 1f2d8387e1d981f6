// Package openscad renders OpenSCAD sources to STL meshes with the openscad
// command line tool.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/philipparndt/gospline/pkg/stl"
)

// DefaultBinary is the executable looked up in PATH
const DefaultBinary = "openscad"

// Matches: use <file.scad>, include <file.scad>, use <./file.scad>, etc.
var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	// Binary is the openscad executable, a name looked up in PATH or a path
	Binary  string
	workDir string
	log     *zap.Logger
}

// NewRenderer creates a new OpenSCAD renderer. Relative source paths are
// resolved against workDir. A nil logger discards output.
func NewRenderer(workDir string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		Binary:  DefaultBinary,
		workDir: workDir,
		log:     log,
	}
}

func (r *Renderer) abs(scadFile string) string {
	if filepath.IsAbs(scadFile) {
		return scadFile
	}
	return filepath.Join(r.workDir, scadFile)
}

// RenderToSTL renders an OpenSCAD file to outputFile
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	binary, err := exec.LookPath(r.Binary)
	if err != nil {
		return fmt.Errorf("%s not found, install OpenSCAD from https://openscad.org/: %w", r.Binary, err)
	}

	cmd := exec.CommandContext(ctx, binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug("rendering", zap.String("source", scadFile), zap.String("output", outputFile))
	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		fmt.Fprintf(&msg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(strings.TrimSpace(stderr.String()))
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(strings.TrimSpace(stdout.String()))
		}
		return fmt.Errorf("%s", msg.String())
	}

	return nil
}

// Render renders an OpenSCAD file through a temporary STL file and parses it
func (r *Renderer) Render(ctx context.Context, scadFile string) (*stl.Model, error) {
	tmp, err := os.CreateTemp("", "gospline-*.stl")
	if err != nil {
		return nil, err
	}
	tempFile := tmp.Name()
	tmp.Close()
	defer os.Remove(tempFile)

	if err := r.RenderToSTL(ctx, scadFile, tempFile); err != nil {
		return nil, err
	}

	model, err := stl.Parse(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	return model, nil
}

// ResolveDependencies finds all dependencies (use/include statements) in an
// OpenSCAD file. The result starts with the file itself, all paths are absolute.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	absScadFile, err := filepath.Abs(r.abs(scadFile))
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	var deps []string

	if err := r.resolveDependenciesRecursive(absScadFile, visited, &deps); err != nil {
		return nil, err
	}

	return deps, nil
}

func (r *Renderer) resolveDependenciesRecursive(scadFile string, visited map[string]bool, deps *[]string) error {
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	fileDeps, err := r.parseDependencies(scadFile)
	if err != nil {
		return err
	}

	for _, dep := range fileDeps {
		if err := r.resolveDependenciesRecursive(dep, visited, deps); err != nil {
			return err
		}
	}

	return nil
}

// parseDependencies parses a single OpenSCAD file to find use/include statements
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if matches := dependencyRegex.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file, then
// relative to the work directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(filepath.Join(currentDir, depPath))
	}

	absPath := filepath.Join(currentDir, depPath)
	if _, err := os.Stat(absPath); err == nil {
		return filepath.Clean(absPath)
	}

	absPath, _ = filepath.Abs(filepath.Join(r.workDir, depPath))
	return filepath.Clean(absPath)
}
