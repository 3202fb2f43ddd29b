package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosensors/internal/pipeline"
	"github.com/philipparndt/gosensors/pkg/analysis"
)

func newTransformCmd(g *globalOptions) *cobra.Command {
	opts := &pipeline.TransformOptions{}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a transformation to the channels of a channel file",
		Long: `Read a channel file, map every channel location through the 4x4 matrix of a
transformation file and write the result. Channel names and order are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "EEG Sensor Transformator")
			fmt.Fprintln(out, "========================")
			fmt.Fprintf(out, "Input: %s\n", opts.Input)
			fmt.Fprintf(out, "Output: %s\n", opts.Output)
			fmt.Fprintf(out, "Transformation: %s\n", opts.Transform)

			set, err := pipeline.Transform(*opts, g.log)
			if err != nil {
				return err
			}

			affine, err := set.Affine()
			if err != nil {
				return err
			}
			bbox := set.Points().BoundingBox()
			fmt.Fprintf(out, "\nChannels: %d\n", len(set.Channels))
			fmt.Fprintf(out, "Accumulated transformation:\n%v\n", affine)
			if len(set.Channels) > 0 {
				fmt.Fprintf(out, "Bounding box: %s - %s\n", analysis.FormatVector(bbox.Min), analysis.FormatVector(bbox.Max))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Input channel file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output channel file (.yaml or .json)")
	cmd.Flags().StringVarP(&opts.Transform, "transform", "t", "", "Transformation file")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("transform")

	return cmd
}
