package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("permission denied")
	err := New(CodeFileSavingFailed, "failed to save output files", cause).
		WithHint(`Please reset data files with "git checkout data"`)

	assert.Equal(t, `failed to save output files: permission denied. Please reset data files with "git checkout data"`, err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("service: build: %w", err)
	code, ok := CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeFileSavingFailed, code)
}

func TestCodeOf_Unclassified(t *testing.T) {
	_, ok := CodeOf(errors.New("boom"))
	assert.False(t, ok)
	assert.Equal(t, "fetch failed", New(CodeFetchFailed, "fetch failed", nil).Error())
}
