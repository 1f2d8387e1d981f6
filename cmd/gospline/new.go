package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/document"
	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/spline"
)

var (
	newPrimitive string
	newSegments  int
	newSize      float64
	newCenter    []float64
	newName      string
	newPolicy    string
	newForce     bool
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a spline document",
	Long: `Create a spline document holding a seed curve or a primitive.

Without --primitive the document holds a single segment seed curve.
The line primitive is open, circle and polygon are closed.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newPrimitive, "primitive", "p", "", "Primitive to generate: line, circle or polygon")
	newCmd.Flags().IntVarP(&newSegments, "segments", "n", 4, "Number of primitive segments")
	newCmd.Flags().Float64Var(&newSize, "size", 4, "Length of a line, diameter of a circle or polygon")
	newCmd.Flags().Float64SliceVar(&newCenter, "center", []float64{0, 0, 0}, "Center as x,y,z")
	newCmd.Flags().StringVar(&newName, "name", "", "Document name (default: file name)")
	newCmd.Flags().StringVar(&newPolicy, "policy", "", "Control point policy: free, tangent or auto-smooth")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing document")

	_ = newCmd.RegisterFlagCompletionFunc("primitive", cobra.FixedCompletions(
		[]string{"line", "circle", "polygon"}, cobra.ShellCompDirectiveNoFileComp))
	_ = newCmd.RegisterFlagCompletionFunc("policy", cobra.FixedCompletions(
		[]string{"free", "tangent", "auto-smooth"}, cobra.ShellCompDirectiveNoFileComp))
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !newForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	if len(newCenter) != 3 {
		return fmt.Errorf("--center needs x,y,z, got %d values", len(newCenter))
	}
	center := geometry.NewVector3(newCenter[0], newCenter[1], newCenter[2])

	var poly *spline.ControlPolygon
	if newPrimitive == "" {
		poly = spline.New(center)
	} else {
		kind, err := spline.ParsePrimitive(newPrimitive)
		if err != nil {
			return err
		}
		poly, err = spline.NewPrimitive(kind, center, newSegments, newSize)
		if err != nil {
			return err
		}
	}

	if newPolicy != "" {
		policy, err := spline.ParsePolicy(newPolicy)
		if err != nil {
			return err
		}
		poly.SetPolicy(policy)
	}

	name := newName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := document.FromPolygon(name, poly).Save(path); err != nil {
		return err
	}

	logger.Info("created document", zap.String("path", path), zap.String("name", name))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, polygonSummary(poly))
	return nil
}
