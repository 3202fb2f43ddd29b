package bnd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

const sampleFile = "FileFormat = BND\n" +
	"NumberPositions= 3\n" +
	"UnitPosition\tmm\n" +
	"Positions\n" +
	"10\t20\t30\n" +
	"-10\t0\t5\n" +
	"0\t0\t100\n" +
	"Labels\n" +
	"Fp1\n"

func warningKinds(result *Result) []errkind.Kind {
	var kinds []errkind.Kind
	for _, w := range result.Warnings {
		kinds = append(kinds, errkind.KindOf(w))
	}
	return kinds
}

func TestDecodeSample(t *testing.T) {
	result, err := Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 3, result.Declared)
	assert.Equal(t, Millimeter, result.Unit)
	assert.Equal(t, 0.001, result.Factor())
	assert.False(t, result.Truncated())

	expected := geometry.PointList{
		geometry.NewVector3(0.01, 0.02, 0.03),
		geometry.NewVector3(-0.01, 0, 0.005),
		geometry.NewVector3(0, 0, 0.1),
	}
	if diff := cmp.Diff(expected, result.Points, approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

// Generated files with N declared and M <= N coordinate lines decode to
// exactly M points.
func TestDecodeTruncatedBlock(t *testing.T) {
	const declared = 8
	for actual := 0; actual <= declared; actual++ {
		var b strings.Builder
		fmt.Fprintf(&b, "NumberPositions= %d\nUnitPosition\tcm\nPositions\n", declared)
		for i := 0; i < actual; i++ {
			fmt.Fprintf(&b, "%d\t%d\t%d\n", i, 2*i, 3*i)
		}

		result, err := Decode(strings.NewReader(b.String()))
		require.NoError(t, err)
		require.Len(t, result.Points, actual)
		assert.Equal(t, actual < declared, result.Truncated())

		for i, p := range result.Points {
			want := geometry.NewVector3(float64(i)*0.01, float64(2*i)*0.01, float64(3*i)*0.01)
			if diff := cmp.Diff(want, p, approx); diff != "" {
				t.Errorf("point %d mismatch (-want +got):\n%s", i, diff)
			}
		}
		if actual < declared {
			assert.Equal(t, []errkind.Kind{errkind.TruncatedData}, warningKinds(result))
		} else {
			assert.Empty(t, result.Warnings)
		}
	}
}

func TestDecodeHeaderOrderDoesNotMatter(t *testing.T) {
	input := "UnitPosition\tdm\nComment=ignored\nNumberPositions= 1\nPositions\n1\t1\t1\n"

	result, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, Decimeter, result.Unit)
	require.Len(t, result.Points, 1)
}

func TestDecodeLenientHeader(t *testing.T) {
	input := "NumberPositions=2\nUnitPosition\tparsecs\nPositions\n1\t2\t3\n"

	result, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	// no count could be read, so no position is decoded
	assert.Empty(t, result.Points)
	assert.Equal(t, Meter, result.Unit)
	assert.Equal(t, []errkind.Kind{errkind.DirectiveFormat, errkind.UnknownUnit}, warningKinds(result))

	var e *errkind.Error
	require.ErrorAs(t, result.Warnings[0], &e)
	assert.Equal(t, 1, e.Line)
}

func TestDecodeMissingDirectives(t *testing.T) {
	result, err := Decode(strings.NewReader("Positions\n1\t2\t3\n"))
	require.NoError(t, err)

	assert.Empty(t, result.Points)
	assert.Equal(t, []errkind.Kind{errkind.DirectiveFormat, errkind.UnknownUnit}, warningKinds(result))
}

func TestDecodeMissingBlock(t *testing.T) {
	result, err := Decode(strings.NewReader("NumberPositions= 2\nUnitPosition\tmm\n"))
	require.NoError(t, err)

	assert.Empty(t, result.Points)
	assert.Equal(t, 2, result.Declared)
	assert.Equal(t, []errkind.Kind{errkind.DirectiveFormat}, warningKinds(result))
}

func TestDecodeBadCoordinate(t *testing.T) {
	_, err := Decode(strings.NewReader("NumberPositions= 2\nUnitPosition\tmm\nPositions\n1\t2\t3\n1\tfoo\t3\n"))
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.CoordinateFormat))
	assert.Contains(t, err.Error(), "line 5")
}

func TestDecodeNonFiniteCoordinate(t *testing.T) {
	for _, z := range []string{"inf", "nan", "-Infinity"} {
		input := "NumberPositions= 3\nUnitPosition\tmm\nPositions\n1\t2\t3\n4\t5\t6\n7\t8\t" + z + "\n"
		_, err := Decode(strings.NewReader(input))
		require.Error(t, err, "z = %s", z)
		assert.True(t, errkind.Is(err, errkind.CoordinateFormat), "z = %s", z)
		assert.Contains(t, err.Error(), "line 6", "z = %s", z)
	}
}

func TestDecodeByteOrderMarkAndCRLF(t *testing.T) {
	input := "\ufeffNumberPositions= 1\r\nUnitPosition\tm\r\nPositions\r\n1\t2\t3\r\n"

	result, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Points, 1)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), result.Points[0])
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cap.bnd")
	require.NoError(t, os.WriteFile(path, []byte("NumberPositions= 2\nUnitPosition\tmm\nPositions\n1\t2\t3\n"), 0644))

	result, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Error(), path)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.bnd"))
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.ResourceOpen))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

