package common_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

func TestRunParallelJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	err, n := onyxcommon.RunParallel(
		func() error { return nil },
		func() error { return boom },
		func() error { return boom },
	)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, boom)

	err, n = onyxcommon.RunParallel(func() error { return nil })
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestFirstSuccess(t *testing.T) {
	v, err := onyxcommon.FirstSuccess(map[string]func() (int, error){
		"bad":  func() (int, error) { return 0, errors.New("down") },
		"good": func() (int, error) { return 7, nil },
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = onyxcommon.FirstSuccess(map[string]func() (int, error){
		"a": func() (int, error) { return 0, errors.New("down") },
	})
	assert.ErrorContains(t, err, "a: down")

	_, err = onyxcommon.FirstSuccess(map[string]func() (int, error){})
	assert.Error(t, err)
}
