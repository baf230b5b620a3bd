package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMap_HelpText(t *testing.T) {
	assert.Equal(t, "↑/↓ navigate • enter select • esc back • ctrl+c quit", DefaultKeyMap().HelpText())
}
