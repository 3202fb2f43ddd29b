// Package bnd reads sensor positions from ".bnd" position files: a header of
// NumberPositions=, UnitPosition and Positions directives followed by one
// tab separated coordinate line per sensor.
package bnd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

// Result is a decoded position file
type Result struct {
	// Points are in meters, in file order
	Points geometry.PointList
	// Declared is the count from the NumberPositions directive
	Declared int
	Unit     Unit
	// Warnings are the recoverable problems found while decoding
	Warnings []error
}

// Factor returns the scale factor that was applied to the coordinates
func (r *Result) Factor() float64 {
	return r.Unit.Factor()
}

// Truncated reports whether the file had fewer positions than declared
func (r *Result) Truncated() bool {
	return len(r.Points) < r.Declared
}

// Parse reads a position file
func Parse(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &errkind.Error{Kind: errkind.ResourceOpen, Path: filename, Msg: "failed to open position file", Err: err}
	}
	defer file.Close()

	result, err := Decode(file)
	if err != nil {
		return nil, errkind.WithPath(err, filename)
	}
	for i, warning := range result.Warnings {
		result.Warnings[i] = errkind.WithPath(warning, filename)
	}
	return result, nil
}

// Decode reads a position file from reader. Header problems that have a safe
// fallback are returned in Result.Warnings; only read errors and malformed
// coordinate lines fail the decode.
func Decode(reader io.Reader) (*Result, error) {
	lines := NewLineReader(reader)
	result := &Result{}
	state := ParseState{}
	seen := make(map[string]bool)

	for lines.Scan() {
		line := lines.Text()
		d, ok := lookupDirective(line)
		if !ok {
			continue
		}
		seen[d.prefix] = true

		if !d.block {
			next, err := d.handle(state, line)
			state = next
			if err != nil {
				result.Warnings = append(result.Warnings, atLine(err, lines.Line()))
			}
			continue
		}

		if !seen[countPrefix] {
			result.Warnings = append(result.Warnings,
				errkind.AtLine(errkind.DirectiveFormat, lines.Line(), "missing %s before %s", countPrefix, blockPrefix))
		}
		if !seen[unitPrefix] {
			result.Warnings = append(result.Warnings,
				errkind.AtLine(errkind.UnknownUnit, lines.Line(), "missing %s before %s, assuming meters", unitPrefix, blockPrefix))
		}

		points, err := DecodePositions(lines, state.Count, state.Unit.Factor())
		if err != nil {
			return nil, err
		}
		result.Points = points
		result.Declared = state.Count
		result.Unit = state.Unit
		if result.Truncated() {
			result.Warnings = append(result.Warnings,
				errkind.New(errkind.TruncatedData, "declared %d positions, found %d", result.Declared, len(result.Points)))
		}
		return result, nil
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("error reading position file: %w", err)
	}

	result.Declared = state.Count
	result.Unit = state.Unit
	result.Warnings = append(result.Warnings, errkind.New(errkind.DirectiveFormat, "no %s block found", blockPrefix))
	return result, nil
}

func atLine(err error, line int) error {
	var e *errkind.Error
	if errors.As(err, &e) && e.Line == 0 {
		cp := *e
		cp.Line = line
		return &cp
	}
	return err
}
