package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/arraymesh"
	"github.com/philipparndt/gospline/pkg/element"
	"github.com/philipparndt/gospline/pkg/preview"
)

var (
	previewOutput    string
	previewElement   string
	previewWidth     int
	previewHeight    int
	previewElevation float64
	previewAzimuth   float64
	previewNoPath    bool
	previewCaption   string
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render the strip of a spline to a PNG image",
	Long: `Render the strip, or the arrayed element with --element, with flat shading and
draw the sampled path on top.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addPipelineFlags(previewCmd)

	f := previewCmd.Flags()
	f.StringVarP(&previewOutput, "output", "o", "", "Output PNG file (default: document path with .png extension)")
	f.StringVarP(&previewElement, "element", "e", "", "Render this element STL or OpenSCAD file arrayed along the strip")
	f.IntVar(&previewWidth, "image-width", 800, "Image width in pixels")
	f.IntVar(&previewHeight, "image-height", 600, "Image height in pixels")
	f.Float64Var(&previewElevation, "elevation", 35, "Camera elevation in degrees")
	f.Float64Var(&previewAzimuth, "azimuth", 30, "Camera azimuth in degrees")
	f.BoolVar(&previewNoPath, "no-path", false, "Do not draw the sampled path")
	f.StringVar(&previewCaption, "caption", "", "Caption text (default: document name and statistics)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	f := cmd.Flags()
	if f.Changed("image-width") {
		cfg.Preview.Width = previewWidth
	}
	if f.Changed("image-height") {
		cfg.Preview.Height = previewHeight
	}
	if f.Changed("elevation") {
		cfg.Preview.Elevation = previewElevation
	}
	if f.Changed("azimuth") {
		cfg.Preview.Azimuth = previewAzimuth
	}

	result, doc, err := runPipeline(cmd, path)
	if err != nil {
		return err
	}
	name := documentName(doc, "strip")

	model, err := result.Mesh.Model(name)
	if err != nil {
		return err
	}
	if previewElement != "" {
		elem, err := element.Loader{Log: logger.Named("openscad")}.Load(cmd.Context(), previewElement)
		if err != nil {
			return fmt.Errorf("element: %w", err)
		}
		model = arraymesh.Combine(name, arraymesh.Pieces(result.Mesh, elem, cfg.ArrayOptions()))
	}

	opts := cfg.PreviewOptions()
	opts.Caption = previewCaption
	if opts.Caption == "" {
		opts.Caption = fmt.Sprintf("%s  %d samples  %d triangles", name, result.Path.Len(), model.TriangleCount())
	}
	if !previewNoPath {
		opts.Path = result.Path.Points
	}

	output := previewOutput
	if output == "" {
		output = withExtension(path, ".png")
	}
	if err := preview.SavePNG(output, model, opts); err != nil {
		return err
	}

	logger.Info("wrote preview", zap.String("output", output), zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", output, opts.Width, opts.Height)
	return nil
}
