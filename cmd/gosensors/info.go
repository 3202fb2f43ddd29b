package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosensors/internal/pipeline"
	"github.com/philipparndt/gosensors/pkg/analysis"
)

func newInfoCmd(g *globalOptions) *cobra.Command {
	var closest int

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display information about a position or channel file",
		Long:  "Show the number of sensors, their bounding box and the spacing between neighbouring sensors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			layout, err := pipeline.LoadLayout(filename, g.log)
			if err != nil {
				return err
			}
			result := analysis.Summarize(layout.Points)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Sensor Layout Information")
			fmt.Fprintln(out, "=========================")
			fmt.Fprintf(out, "File: %s\n", filename)
			if layout.Unit != "" {
				fmt.Fprintf(out, "Declared unit: %s\n", layout.Unit)
			}
			fmt.Fprintf(out, "Sensors: %d", result.Count)
			if layout.Declared != result.Count {
				fmt.Fprintf(out, " (%d declared)", layout.Declared)
			}
			fmt.Fprintln(out)
			if result.Count == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nBounding Box:")
			fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
			fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
			fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
			fmt.Fprintf(out, "  Centroid: %s\n\n", analysis.FormatVector(result.Centroid))

			fmt.Fprintln(out, "Dimensions:")
			fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, "m"))
			fmt.Fprintf(out, "  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, "m"))
			fmt.Fprintf(out, "  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, "m"))
			fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), "m"))

			if result.Count < 2 {
				return nil
			}
			fmt.Fprintln(out, "\nNearest Neighbour Spacing:")
			fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinSpacing, "m"))
			fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxSpacing, "m"))
			fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgSpacing, "m"))

			if fit, err := analysis.FitSphere(layout.Points); err == nil {
				fmt.Fprintln(out, "\nHead Sphere:")
				fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(fit.Center))
				fmt.Fprintf(out, "  Radius: %s\n", analysis.FormatMeasurement(fit.Radius, "m"))
				fmt.Fprintf(out, "  Deviation: %s\n", analysis.FormatMeasurement(fit.StdDev, "m"))
			} else {
				g.log.WithError(err).Debug("no head sphere")
			}

			if closest > 0 {
				fmt.Fprintf(out, "\nClosest %d sensors:\n", closest)
				for _, s := range analysis.ClosestPairs(result, closest) {
					fmt.Fprintf(out, "  %s -> %s: %s\n",
						layout.Names[s.Index], layout.Names[s.Neighbor], analysis.FormatMeasurement(s.Distance, "m"))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&closest, "closest", "n", 0, "Number of most closely spaced sensors to list")

	return cmd
}
