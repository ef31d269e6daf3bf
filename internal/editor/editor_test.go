package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoosePreferenceOrder(t *testing.T) {
	t.Setenv("VISUAL", "visual-ed")
	t.Setenv("EDITOR", "editor-ed")

	assert.Equal(t, "configured-ed", Choose("configured-ed"))
	assert.Equal(t, "visual-ed", Choose(""))

	t.Setenv("VISUAL", "")
	assert.Equal(t, "editor-ed", Choose(""))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal("vim"))
	assert.True(t, Terminal("nvim -u NONE"))
	assert.True(t, Terminal("nano"))
	assert.False(t, Terminal("code"))
	assert.False(t, Terminal("cursor --wait"))
	assert.False(t, Terminal(""))
}
