package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gospline/pkg/analysis"
)

var sampleFrames bool

var sampleCmd = &cobra.Command{
	Use:   "sample <file>",
	Short: "Print the evenly spaced samples of a spline",
	Long:  "Resample the spline at the configured spacing and print every sample, optionally with its frame.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	addPipelineFlags(sampleCmd)

	sampleCmd.Flags().BoolVar(&sampleFrames, "frames", false, "Also print tangent, normal and up of every sample")
}

func runSample(cmd *cobra.Command, args []string) error {
	result, _, err := runPipeline(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	header := "#\tposition"
	if result.Path.Angles != nil {
		header += "\tangle"
	}
	if sampleFrames {
		header += "\ttangent\tnormal\tup"
	}
	fmt.Fprintln(w, header)

	for i, p := range result.Path.Points {
		line := fmt.Sprintf("%d\t%s", i, analysis.FormatVector(p))
		if result.Path.Angles != nil {
			line += fmt.Sprintf("\t%.3f", result.Path.Angles[i])
		}
		if sampleFrames {
			f := result.Frames[i]
			line += fmt.Sprintf("\t%s\t%s\t%s",
				analysis.FormatVector(f.Tangent),
				analysis.FormatVector(f.Normal),
				analysis.FormatVector(f.Up))
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
