package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", Wrap(ErrValidation, "bad flag"), ExitValidationError},
		{"unavailable", Wrap(ErrUnavailable, "listing failed"), ExitUnavailable},
		{"retrieval", Wrap(ErrRetrieval, "fetch mit failed"), ExitRetrievalError},
		{"write", Wrap(ErrWrite, "cannot write LICENSE"), ExitWriteError},
		{"unknown", errors.New("boom"), ExitGeneralError},
		{"exit error wins", NewExitError(errors.New("boom"), ExitWriteError), ExitWriteError},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(errors.New("boom"), ExitUnavailable)), ExitUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Registry Unavailable", ExitCodeName(ExitUnavailable))
	assert.Equal(t, "Retrieval Error", ExitCodeName(ExitRetrievalError))
	assert.Equal(t, "Write Error", ExitCodeName(ExitWriteError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestDetailError(t *testing.T) {
	err := &DetailError{
		Type:     "retrieval failed",
		Message:  "license 'wtfpl' not found in registry",
		Location: "https://api.github.com/licenses/wtfpl",
		Hint:     "Run 'licensor get --list' to see available licenses.",
		Cause:    ErrRetrieval,
	}

	assert.ErrorIs(t, err, ErrRetrieval)
	assert.Contains(t, err.Error(), "retrieval failed")
	assert.Contains(t, err.Error(), "wtfpl")
	assert.Contains(t, err.Error(), "Hint:")
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrWrite, errors.New("permission denied"), "writing ./LICENSE")
	assert.ErrorIs(t, err, ErrWrite)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Contains(t, err.Error(), "./LICENSE")
}
