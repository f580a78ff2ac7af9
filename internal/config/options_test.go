package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdhtml/internal/config"
)

func TestDefaultParserOptions(t *testing.T) {
	opts := config.DefaultParserOptions()
	assert.Equal(t, 4, opts.TabWidth)
	assert.False(t, opts.StrictRefs)
}
