package stage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError("ocr", "pdftotext failed")
	assert.Equal(t, "ocr: pdftotext failed", err.Error())

	err = Errorf("ai_extract", "unexpected status %d", 429)
	assert.Equal(t, "ai_extract: unexpected status 429", err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError("reconcile", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "reconcile: connection refused", err.Error())

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "reconcile", se.Stage)

	assert.NoError(t, WrapError("reconcile", nil))
}
