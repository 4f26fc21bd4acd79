package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIMissingConfigReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESALE_TOKEN", "")

	err := runTUI(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRootHelpListsCommands(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	for _, name := range []string{"login", "list", "report", "upload", "orders", "create", "update", "delete"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestRootUnknownCommand(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"nope"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
