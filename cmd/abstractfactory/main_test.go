package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRun_Success(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Client: Testing client code with the first factory type:\n"), stdout.String())
}

// TestRun_Deterministic verifies two runs print the same transcript.
func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	var a, b, stderr bytes.Buffer
	assert.Equal(t, 0, run(&a, &stderr))
	assert.Equal(t, 0, run(&b, &stderr))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := run(failingWriter{}, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "abstractfactory: closed pipe\n", stderr.String())
}
