package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidodo/mdto/pkg/mdto"
)

func TestRun_PanicExitCode(t *testing.T) {
	t.Setenv("MDTO_TEST_PANIC", "1")
	assert.Equal(t, mdto.ExitPanic, run())
}
