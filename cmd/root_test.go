package cmd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "trecsweep", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "Trecsweep finds recording files")
}

func TestRootCmd_RegisteredSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"scan", "refs", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "INFO"},
		{"debug", "debug", "DEBUG"},
		{"warn", "warn", "WARN"},
		{"warning", "Warning", "WARN"},
		{"error", "ERROR", "ERROR"},
		{"numeric", "-4", "DEBUG"},
		{"garbage", "loud", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSlogLevel(tt.value, slog.LevelInfo)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
