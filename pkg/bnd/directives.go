package bnd

import (
	"strconv"
	"strings"

	"github.com/philipparndt/gosensors/pkg/errkind"
)

const (
	countPrefix = "NumberPositions="
	unitPrefix  = "UnitPosition"
	blockPrefix = "Positions"
)

// ParseState is what the header has declared so far
type ParseState struct {
	Count    int
	HasCount bool
	Unit     Unit
	HasUnit  bool
}

// directiveHandler folds one directive line into the state. On error the
// returned state is still usable and carries the fallback values.
type directiveHandler func(state ParseState, line string) (ParseState, error)

type directive struct {
	prefix string
	handle directiveHandler
	// block marks the start of the coordinate block
	block bool
}

var directives = []directive{
	{prefix: countPrefix, handle: parseCount},
	{prefix: unitPrefix, handle: parseUnit},
	{prefix: blockPrefix, block: true},
}

// lookupDirective returns the directive a line starts with
func lookupDirective(line string) (directive, bool) {
	for _, d := range directives {
		if strings.HasPrefix(line, d.prefix) {
			return d, true
		}
	}
	return directive{}, false
}

// parseCount reads "NumberPositions= <n>". The count follows the first space.
func parseCount(state ParseState, line string) (ParseState, error) {
	_, rest, ok := strings.Cut(line, " ")
	if !ok {
		return state, errkind.New(errkind.DirectiveFormat, "could not split %q", line)
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return state, errkind.New(errkind.DirectiveFormat, "missing position count in %q", line)
	}
	count, err := strconv.ParseUint(fields[0], 10, strconv.IntSize-1)
	if err != nil {
		return state, &errkind.Error{Kind: errkind.DirectiveFormat, Msg: "invalid position count", Err: err}
	}
	state.Count = int(count)
	state.HasCount = true
	return state, nil
}

func parseUnit(state ParseState, line string) (ParseState, error) {
	unit, err := ResolveUnit(strings.TrimPrefix(line, unitPrefix))
	state.Unit = unit
	state.HasUnit = err == nil
	return state, err
}
