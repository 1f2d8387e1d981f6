package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/stl"
	"github.com/philipparndt/gospline/pkg/watcher"
)

var (
	buildOutput string
	buildASCII  bool
	buildWatch  bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Tessellate the strip of a spline and export it as STL",
	Long: `Resample the spline, build its frames and tessellate the strip, then write
the mesh as STL. With --watch the document is rebuilt whenever it changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addPipelineFlags(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output STL file (default: document path with .stl extension)")
	buildCmd.Flags().BoolVar(&buildASCII, "ascii", false, "Write ASCII STL instead of binary")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "Rebuild whenever the document changes")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]
	output := buildOutput
	if output == "" {
		output = withExtension(path, ".stl")
	}
	if cmd.Flags().Changed("ascii") {
		cfg.Output.Binary = !buildASCII
	}

	if err := buildOnce(cmd, path, output); err != nil {
		if !buildWatch {
			return err
		}
		logger.Error("build failed", zap.Error(err))
	}
	if !buildWatch {
		return nil
	}
	return watchAndRebuild(cmd.Context(), []string{path}, func() error {
		return buildOnce(cmd, path, output)
	})
}

func buildOnce(cmd *cobra.Command, path, output string) error {
	result, doc, err := runPipeline(cmd, path)
	if err != nil {
		return err
	}

	model, err := result.Mesh.Model(documentName(doc, "strip"))
	if err != nil {
		return err
	}
	format := cfg.OutputFormat()
	if err := stl.Save(output, model, format); err != nil {
		return err
	}

	logger.Info("wrote strip",
		zap.String("output", output),
		zap.Stringer("format", format),
		zap.Int("triangles", model.TriangleCount()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %d triangles\n", output, result.Path.Len(), model.TriangleCount())
	return nil
}

// watchAndRebuild calls rebuild after every change of one of paths until ctx is done
func watchAndRebuild(ctx context.Context, paths []string, rebuild func() error) error {
	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger.Named("watcher"))
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	err = fw.Watch(paths, func(string) {
		mu.Lock()
		defer mu.Unlock()
		if err := rebuild(); err != nil {
			logger.Error("rebuild failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	logger.Info("watching for changes", zap.Strings("paths", paths))
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
