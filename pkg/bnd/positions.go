package bnd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

// maxPrealloc bounds the capacity reserved up front, since the count comes
// from an untrusted header
const maxPrealloc = 4096

var axisNames = [3]string{"x", "y", "z"}

// DecodePositions reads up to count coordinate lines from lines and scales
// every coordinate by factor. Blank lines are skipped. Running out of input
// before count points is not an error; the caller compares the length of
// the result with count.
func DecodePositions(lines *LineReader, count int, factor float64) (geometry.PointList, error) {
	points := make(geometry.PointList, 0, min(count, maxPrealloc))
	for len(points) < count && lines.Scan() {
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		point, err := parsePosition(line)
		if err != nil {
			return nil, &errkind.Error{
				Kind: errkind.CoordinateFormat,
				Line: lines.Line(),
				Msg:  "invalid position",
				Err:  err,
			}
		}
		points = append(points, point.Mul(factor))
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("error reading positions: %w", err)
	}
	return points, nil
}

// parsePosition splits "x\ty\tz" at the first two tabs. Lines with fewer
// than two tabs are split on whitespace instead. Only the first token of each
// field is used, so trailing columns after z are ignored.
func parsePosition(line string) (geometry.Vector3, error) {
	var fields [3]string
	if strings.Count(line, "\t") >= 2 {
		x, rest, _ := strings.Cut(line, "\t")
		y, z, _ := strings.Cut(rest, "\t")
		fields = [3]string{x, y, z}
	} else {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			return geometry.Vector3{}, fmt.Errorf("expected 3 values in %q", line)
		}
		fields = [3]string{parts[0], parts[1], parts[2]}
	}

	var values [3]float64
	for i, field := range fields {
		tokens := strings.Fields(field)
		if len(tokens) == 0 {
			return geometry.Vector3{}, fmt.Errorf("missing %s value", axisNames[i])
		}
		value, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return geometry.Vector3{}, fmt.Errorf("invalid %s value %q", axisNames[i], tokens[0])
		}
		values[i] = value
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}
