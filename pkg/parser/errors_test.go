package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_ErrorStringIncludesPosition(t *testing.T) {
	err := newParseError(3, 7, "something went wrong", ErrNoMatch)
	assert.Contains(t, err.Error(), "3:7")
	assert.True(t, errors.Is(err, ErrNoMatch))
}
