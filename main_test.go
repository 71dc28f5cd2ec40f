package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "tui"}, names)
}

func TestServe_InvalidConfig(t *testing.T) {
	t.Setenv("PORTFOLIO_GIN_MODE", "production")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"serve"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_GIN_MODE")
}
