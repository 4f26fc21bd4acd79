package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialog(t *testing.T) {
	out := ConfirmDialog("Delete category", "Delete Apple?")
	assert.Contains(t, out, "Delete category")
	assert.Contains(t, out, "Delete Apple?")
	assert.Contains(t, out, "y: confirm | n: cancel")
}

func TestInputDialogListsOptions(t *testing.T) {
	out := InputDialog("New status", "pick", []string{"pending", "picked"}, "")
	assert.Contains(t, out, "New status")
	assert.Contains(t, out, "> pick")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "picked")
	assert.Contains(t, out, "enter: submit | esc: cancel")
}

func TestInputDialogShowsProblem(t *testing.T) {
	out := InputDialog("New status", "teleported", nil, "unknown status")
	assert.Contains(t, out, "unknown status")
}
