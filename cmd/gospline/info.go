package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gospline/pkg/analysis"
	"github.com/philipparndt/gospline/pkg/stl"
)

var infoShortest int

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display information about a spline document or an STL file",
	Long: `For a spline document, show the control polygon, the sampled path with its
spacing and tightest turn, and the tessellated strip. For an STL file, show
dimensions, triangle count, surface area and edge statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addPipelineFlags(infoCmd)

	infoCmd.Flags().IntVarP(&infoShortest, "shortest", "n", 0, "Also list the n shortest edges of the mesh")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	if strings.EqualFold(filepath.Ext(filename), ".stl") {
		model, err := stl.Parse(filename)
		if err != nil {
			return fmt.Errorf("parsing STL file: %w", err)
		}
		fmt.Fprintln(out, "STL File Information")
		fmt.Fprintln(out, "====================")
		if model.Name != "" {
			fmt.Fprintf(out, "Name: %s\n", model.Name)
		}
		fmt.Fprintf(out, "File: %s\n\n", filename)
		printModel(out, analysis.AnalyzeModel(model))
		return nil
	}

	result, doc, err := runPipeline(cmd, filename)
	if err != nil {
		return err
	}
	poly, err := doc.Polygon()
	if err != nil {
		return err
	}
	report := analysis.AnalyzePath(result.Path, poly.Closed())

	fmt.Fprintln(out, "Spline Information")
	fmt.Fprintln(out, "==================")
	if doc.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", doc.Name)
	}
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Control polygon: %s\n\n", polygonSummary(poly))

	fmt.Fprintln(out, "Path:")
	fmt.Fprintf(out, "  Samples: %d\n", report.Samples)
	fmt.Fprintf(out, "  Length: %s\n", analysis.FormatMeasurement(report.Length, ""))
	fmt.Fprintf(out, "  Spacing: min %.6f, max %.6f, avg %.6f\n", report.MinSpacing, report.MaxSpacing, report.AvgSpacing)
	if report.TightestSample >= 0 {
		fmt.Fprintf(out, "  Tightest turn: radius %.6f at sample %d\n\n", report.MinTurnRadius, report.TightestSample)
	} else {
		fmt.Fprintln(out, "  Tightest turn: none (straight)")
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Strip:")
	fmt.Fprintf(out, "  Layout: %s\n", result.Mesh.Mode)
	fmt.Fprintf(out, "  Vertices: %d\n", len(result.Mesh.Vertices))
	fmt.Fprintf(out, "  Quads: %d\n\n", result.Mesh.QuadCount())

	model, err := result.Mesh.Model(documentName(doc, "strip"))
	if err != nil {
		return err
	}
	printModel(out, analysis.AnalyzeModel(model))
	return nil
}

func printModel(out io.Writer, result *analysis.MeasurementResult) {
	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)

	if infoShortest > 0 {
		fmt.Fprintf(out, "\nShortest Edges:\n")
		for i, e := range analysis.FindShortestEdges(result, infoShortest) {
			fmt.Fprintf(out, "  %d. %.6f units, triangle %d, %s -> %s\n",
				i+1, e.Length, e.TriangleID, analysis.FormatVector(e.Start), analysis.FormatVector(e.End))
		}
	}
}
