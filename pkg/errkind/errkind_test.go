package errkind

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: TransformFormat, Path: "trans.txt", Line: 3, Msg: "expected 4 values, got 3"}
	assert.Equal(t, "transform format error in trans.txt at line 3: expected 4 values, got 3", err.Error())

	bare := New(Range, "skip must be >= 1")
	assert.Equal(t, "range error: skip must be >= 1", bare.Error())
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to read positions: %w", AtLine(CoordinateFormat, 7, "bad value"))

	assert.True(t, Is(err, CoordinateFormat))
	assert.False(t, Is(err, TransformFormat))
	assert.Equal(t, CoordinateFormat, KindOf(err))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ResourceOpen, os.ErrNotExist, "failed to open file")
	require.Error(t, err)

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, Is(err, ResourceOpen))
	assert.Nil(t, Wrap(ResourceOpen, nil, "unused"))
}

func TestWithPath(t *testing.T) {
	err := WithPath(AtLine(DirectiveFormat, 2, "no space"), "cap.bnd")
	assert.Equal(t, "directive format error in cap.bnd at line 2: no space", err.Error())

	plain := errors.New("plain")
	assert.Equal(t, plain, WithPath(plain, "cap.bnd"))
}

func TestUnknownKinds(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(errors.New("other")))
	assert.False(t, Is(nil, Unknown))
	assert.Equal(t, "kind(99)", Kind(99).String())
}
