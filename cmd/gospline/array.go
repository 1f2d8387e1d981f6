package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/arraymesh"
	"github.com/philipparndt/gospline/pkg/element"
	"github.com/philipparndt/gospline/pkg/stl"
)

var (
	arrayElement     string
	arrayOutput      string
	arraySplitDir    string
	arraySkip        int
	arraySlideOffset float64
	arrayHeightScale float64
	arrayRanges      []string
	arrayWatch       bool
)

var arrayCmd = &cobra.Command{
	Use:   "array <file>",
	Short: "Bend an element mesh into every quad of the strip",
	Long: `Place a copy of an element STL into each selected quad of the strip, deformed
to follow the spline. X of the element runs across the strip, Z along it and Y
is lifted along the strip's up direction.

The element is an STL file or an OpenSCAD source rendered with openscad.
The copies are merged into one STL, or written one file per quad with --split-dir.
With --watch the output is rebuilt whenever the document or the element changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runArray,
}

func init() {
	rootCmd.AddCommand(arrayCmd)
	addPipelineFlags(arrayCmd)

	f := arrayCmd.Flags()
	f.StringVarP(&arrayElement, "element", "e", "", "Element STL or OpenSCAD file")
	f.StringVarP(&arrayOutput, "output", "o", "", "Output STL file (default: document path with _array.stl suffix)")
	f.StringVar(&arraySplitDir, "split-dir", "", "Write one STL per quad into this directory")
	f.IntVar(&arraySkip, "skip", 0, "Quads left empty after every placed element")
	f.Float64Var(&arraySlideOffset, "slide", 0, "Sideways offset in units of the strip width")
	f.Float64Var(&arrayHeightScale, "height-scale", 1, "Scale of the element height")
	f.StringArrayVar(&arrayRanges, "range", nil, "Part of the strip as from:to fractions, repeatable")
	f.BoolVar(&arrayWatch, "watch", false, "Rebuild whenever the document or the element changes")
	_ = arrayCmd.MarkFlagRequired("element")
}

func runArray(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := applyArrayFlags(cmd); err != nil {
		return err
	}
	opts := cfg.ArrayOptions()
	if err := opts.Validate(); err != nil {
		return err
	}
	loader := element.Loader{Log: logger.Named("openscad")}

	if err := arrayOnce(cmd, path, loader, opts); err != nil {
		if !arrayWatch {
			return err
		}
		logger.Error("array failed", zap.Error(err))
	}
	if !arrayWatch {
		return nil
	}

	sources, err := loader.Sources(arrayElement)
	if err != nil {
		return err
	}
	return watchAndRebuild(cmd.Context(), append([]string{path}, sources...), func() error {
		return arrayOnce(cmd, path, loader, opts)
	})
}

func arrayOnce(cmd *cobra.Command, path string, loader element.Loader, opts arraymesh.Options) error {
	elem, err := loader.Load(cmd.Context(), arrayElement)
	if err != nil {
		return fmt.Errorf("element: %w", err)
	}

	result, doc, err := runPipeline(cmd, path)
	if err != nil {
		return err
	}
	pieces := arraymesh.Pieces(result.Mesh, elem, opts)
	format := cfg.OutputFormat()

	if arraySplitDir != "" {
		if err := os.MkdirAll(arraySplitDir, 0755); err != nil {
			return err
		}
		count := 0
		for piece := range pieces {
			out := filepath.Join(arraySplitDir, piece.Name+".stl")
			if err := stl.Save(out, piece, format); err != nil {
				return err
			}
			count++
		}
		logger.Info("wrote pieces", zap.String("dir", arraySplitDir), zap.Int("pieces", count))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pieces\n", arraySplitDir, count)
		return nil
	}

	output := arrayOutput
	if output == "" {
		output = withExtension(path, "_array.stl")
	}
	combined := arraymesh.Combine(documentName(doc, "array"), pieces)
	if err := stl.Save(output, combined, format); err != nil {
		return err
	}

	logger.Info("wrote array",
		zap.String("output", output),
		zap.Int("quads", result.Mesh.QuadCount()),
		zap.Int("triangles", combined.TriangleCount()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d triangles\n", output, combined.TriangleCount())
	return nil
}

func applyArrayFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	if f.Changed("skip") {
		cfg.Array.Skip = arraySkip
	}
	if f.Changed("slide") {
		cfg.Array.SlideOffset = arraySlideOffset
	}
	if f.Changed("height-scale") {
		cfg.Array.HeightScale = arrayHeightScale
	}
	if f.Changed("range") {
		ranges, err := parseRanges(arrayRanges)
		if err != nil {
			return err
		}
		cfg.Array.Ranges = ranges
	}
	return nil
}

// parseRanges reads from:to pairs such as 0:0.5
func parseRanges(values []string) ([]arraymesh.Range, error) {
	ranges := make([]arraymesh.Range, 0, len(values))
	for _, v := range values {
		from, to, ok := strings.Cut(v, ":")
		if !ok {
			return nil, fmt.Errorf("invalid range %q, expected from:to", v)
		}
		f, err := strconv.ParseFloat(from, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", v, err)
		}
		t, err := strconv.ParseFloat(to, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", v, err)
		}
		ranges = append(ranges, arraymesh.Range{From: f, To: t})
	}
	return ranges, nil
}
