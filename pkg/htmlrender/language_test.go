package htmlrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_Empty(t *testing.T) {
	assert.Equal(t, "", detectLanguage(nil))
	assert.Equal(t, "", detectLanguage([]byte("")))
}

func TestDetectLanguage_Shebang(t *testing.T) {
	got := detectLanguage([]byte("#!/usr/bin/env python\nprint('hi')\n"))
	assert.Equal(t, "python", got)
}

func TestDetectLanguage_Dockerfile(t *testing.T) {
	got := detectLanguage([]byte("FROM golang:1.25\nRUN go build ./...\n"))
	assert.Equal(t, "dockerfile", got)
}

func TestNormalizeLanguage_FoldsShellToBash(t *testing.T) {
	assert.Equal(t, "bash", normalizeLanguage("Shell"))
}

func TestNormalizeLanguage_Lowercases(t *testing.T) {
	assert.Equal(t, "go", normalizeLanguage("Go"))
}

func TestLooksLikeDockerfile(t *testing.T) {
	assert.True(t, looksLikeDockerfile([]byte("FROM scratch\n")))
	assert.True(t, looksLikeDockerfile([]byte("  FROM scratch\n")))
	assert.False(t, looksLikeDockerfile([]byte("package main\n")))
}
