package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosensors/internal/pipeline"
	"github.com/philipparndt/gosensors/pkg/watcher"
)

type generateOptions struct {
	input     string
	output    string
	transform string
	skip      int
	cutBottom float64
	watch     bool
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a channel file from a BND position file",
		Long: `Read electrode positions from a BND position file, convert them to meters,
remove the points of the bottom sphere and write one EEG channel per remaining
position. A transformation file can be applied before the channels are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, o)
		},
	}

	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Input BND position file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output channel file (.yaml or .json)")
	cmd.Flags().StringVarP(&o.transform, "transform", "t", "", "Transformation file applied to the positions")
	cmd.Flags().IntVarP(&o.skip, "skip", "s", 1, "Take every n-th position")
	cmd.Flags().Float64VarP(&o.cutBottom, "cut-bottom", "c", 0.33, "Share of the z-range removed as bottom sphere, 0 keeps all points")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "Regenerate when an input file changes")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (o *generateOptions) resolve(cmd *cobra.Command, g *globalOptions) pipeline.GenerateOptions {
	opts := pipeline.GenerateOptions{
		Input:     o.input,
		Output:    o.output,
		CutBottom: g.cfg.CutBottom,
		Skip:      g.cfg.Skip,
		Transform: g.cfg.Transform,
	}
	if cmd.Flags().Changed("cut-bottom") {
		opts.CutBottom = o.cutBottom
	}
	if cmd.Flags().Changed("skip") {
		opts.Skip = o.skip
	}
	if cmd.Flags().Changed("transform") {
		opts.Transform = o.transform
	}
	return opts
}

func runGenerate(cmd *cobra.Command, g *globalOptions, o *generateOptions) error {
	opts := o.resolve(cmd, g)
	if err := opts.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "EEG Sensor Generator")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Input: %s\n", opts.Input)
	fmt.Fprintf(out, "Output: %s\n", opts.Output)
	fmt.Fprintf(out, "Skip: %d\n", opts.Skip)
	fmt.Fprintf(out, "Cut bottom: %g\n", opts.CutBottom)
	if opts.Transform != "" {
		fmt.Fprintf(out, "Transformation: %s\n", opts.Transform)
	}

	report, err := pipeline.Generate(opts, g.log)
	if err != nil {
		return err
	}
	printGenerateReport(out, report)

	fmt.Fprintln(out, "\nNow you can create a high resolution leadfield with:")
	fmt.Fprintln(out, pipeline.ForwardHint(opts.Output))

	if !o.watch {
		return nil
	}
	return watchGenerate(cmd, g, opts)
}

func printGenerateReport(out io.Writer, report *pipeline.GenerateReport) {
	fmt.Fprintln(out, "\nResult:")
	fmt.Fprintf(out, "  Unit: %s (factor %g)\n", report.Unit, report.Unit.Factor())
	fmt.Fprintf(out, "  Positions read: %d of %d declared\n", report.Read, report.Declared)
	fmt.Fprintf(out, "  Bottom sphere: %d removed below z = %.6f m\n", report.Removed, report.Threshold)
	if report.Transformed {
		fmt.Fprintf(out, "  Transformation:\n%v\n", report.Affine)
	}
	fmt.Fprintf(out, "  Channels written: %d\n", len(report.Set.Channels))
}

func watchGenerate(cmd *cobra.Command, g *globalOptions, opts pipeline.GenerateOptions) error {
	files := []string{opts.Input}
	if opts.Transform != "" {
		files = append(files, opts.Transform)
	}

	w, err := watcher.New(files, g.cfg.WatchDebounce.Duration, g.log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nWatching:")
	for _, file := range w.Files() {
		fmt.Fprintf(out, "  %s\n", file)
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	err = w.Run(ctx, func(changed string) {
		g.log.WithField("file", changed).Info("input changed, regenerating")
		report, err := pipeline.Generate(opts, g.log)
		if err != nil {
			g.log.WithError(err).Error("generate failed")
			return
		}
		printGenerateReport(out, report)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
