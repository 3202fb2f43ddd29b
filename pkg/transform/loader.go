package transform

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosensors/pkg/errkind"
)

// Load reads a transform from the first 4 non-empty lines of reader. Each
// line must hold exactly 4 whitespace separated finite numbers; anything
// after the fourth row is ignored.
func Load(reader io.Reader) (Affine, error) {
	scanner := bufio.NewScanner(reader)
	var rows [4][4]float64
	row, lineNo := 0, 0

	for row < 4 && scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return Affine{}, errkind.AtLine(errkind.TransformFormat, lineNo,
				"expected 4 values in row %d, got %d", row+1, len(fields))
		}
		for col, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return Affine{}, errkind.AtLine(errkind.TransformFormat, lineNo,
					"invalid value %q in row %d", field, row+1)
			}
			rows[row][col] = value
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Affine{}, errkind.Wrap(errkind.TransformFormat, err, "error reading transform")
	}
	if row < 4 {
		return Affine{}, errkind.New(errkind.TransformFormat, "expected 4 rows, got %d", row)
	}
	return NewAffine(rows), nil
}

// LoadFile reads a transform file
func LoadFile(filename string) (Affine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Affine{}, &errkind.Error{Kind: errkind.ResourceOpen, Path: filename, Msg: "failed to open transform file", Err: err}
	}
	defer file.Close()

	a, err := Load(file)
	if err != nil {
		return Affine{}, errkind.WithPath(err, filename)
	}
	return a, nil
}
