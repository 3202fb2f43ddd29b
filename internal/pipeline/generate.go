// Package pipeline runs the gosensors stages: reading positions, cutting
// the bottom sphere, transforming, thinning and writing channels.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/philipparndt/gosensors/pkg/bnd"
	"github.com/philipparndt/gosensors/pkg/channels"
	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/filter"
	"github.com/philipparndt/gosensors/pkg/transform"
)

// GenerateOptions configures Generate
type GenerateOptions struct {
	Input     string
	Output    string
	CutBottom float64
	Skip      int
	// Transform is an optional transform file
	Transform string
}

// Validate rejects options before any file is touched
func (o GenerateOptions) Validate() error {
	if o.Input == "" || o.Output == "" {
		return errors.New("input and output files are required")
	}
	if err := filter.ValidateFraction(o.CutBottom); err != nil {
		return err
	}
	return filter.ValidateSkip(o.Skip)
}

// GenerateReport describes a finished Generate run
type GenerateReport struct {
	Unit        bnd.Unit
	Declared    int
	Read        int
	Removed     int
	Threshold   float64
	Transformed bool
	Affine      transform.Affine
	Set         *channels.Set
}

// Generate turns a position file into a channel file
func Generate(opts GenerateOptions, log *logrus.Entry) (*GenerateReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log = log.WithField("input", opts.Input)

	report := &GenerateReport{Affine: transform.Identity()}
	if opts.Transform != "" {
		affine, err := transform.LoadFile(opts.Transform)
		if err != nil {
			return nil, err
		}
		report.Affine = affine
		report.Transformed = true
		log.WithField("transform", opts.Transform).Debugf("transformation:\n%v", affine)
	}

	result, err := bnd.Parse(opts.Input)
	if err != nil {
		return nil, err
	}
	logWarnings(log, result.Warnings)
	report.Unit = result.Unit
	report.Declared = result.Declared
	report.Read = len(result.Points)
	log.WithFields(logrus.Fields{
		"unit":   result.Unit,
		"factor": result.Factor(),
		"points": report.Read,
	}).Info("read positions")

	cut, err := filter.RemoveBottom(result.Points, opts.CutBottom)
	if err != nil {
		return nil, err
	}
	report.Removed = cut.Removed
	report.Threshold = cut.Threshold
	log.WithFields(logrus.Fields{
		"removed":   cut.Removed,
		"threshold": cut.Threshold,
		"left":      len(cut.Points),
	}).Info("removed bottom sphere")

	points := cut.Points
	if report.Transformed {
		points = transform.Apply(points, report.Affine)
	}

	points, err = filter.Stride(points, opts.Skip)
	if err != nil {
		return nil, err
	}

	report.Set = channels.FromPoints(opts.Input, points, report.Affine)
	if err := channels.WriteFile(opts.Output, report.Set); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"output":   opts.Output,
		"channels": len(report.Set.Channels),
	}).Info("wrote channels")

	return report, nil
}

// logWarnings reports recoverable decode problems. A short coordinate block
// is informational; everything else is a warning.
func logWarnings(log *logrus.Entry, warnings []error) {
	for _, w := range warnings {
		entry := log.WithField("kind", errkind.KindOf(w).String())
		if errkind.Is(w, errkind.TruncatedData) {
			entry.Info(w.Error())
			continue
		}
		entry.Warn(w.Error())
	}
}

// ForwardHint is the command that computes a leadfield for a generated file
func ForwardHint(output string) string {
	return fmt.Sprintf(`mne_forward_solution --eeg --fixed \
--src <source file> \
--trans <ASCII file containing a 4x4 identity matrix> \
--meas %s \
--bem <BEM layer file> \
--fwd <output file for forward solution>`, output)
}
