package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bridgeEdges = `1 2
1 3
2 3
3 4
4 5
4 6
5 6
7 7
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_JSONReport(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)
	metricsOut := filepath.Join(dir, "gn.prom")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-input", input, "-format", "json", "-metrics-out", metricsOut,
	}, &stdout, &stderr)
	require.NoError(t, err)

	var out struct {
		RunID       string    `json:"run_id"`
		StopReason  string    `json:"stop_reason"`
		Communities [][]int64 `json:"communities"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, "plateau", out.StopReason)
	// 7 only appears in a self-loop, so it is kept as an isolated vertex
	assert.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7}}, out.Communities)

	assert.Contains(t, stderr.String(), "self-loops ignored")
	assert.Contains(t, stderr.String(), out.RunID)

	data, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "girvan_newman_rounds_total 2")
}

func TestRun_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)
	cfgPath := writeFile(t, dir, "run.yaml", "input: "+input+"\nformat: json\nlog_level: error\nsolver:\n  max_rounds: 5\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", cfgPath, "-format", "text", "-max-rounds", "1"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "max_rounds")
	assert.Contains(t, stdout.String(), "Set 2")
	assert.Empty(t, stderr.String(), "log_level error suppresses info lines")
}

func TestRun_LogLevelFromEnvWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)
	cfgPath := writeFile(t, dir, "run.yaml", "input: "+input+"\n")
	t.Setenv("LOG_LEVEL", "debug")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `"level":"DEBUG"`)

	stderr.Reset()
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath, "-log-level", "error"}, &stdout, &stderr))
	assert.Empty(t, stderr.String(), "flag overrides the env level")
}

func TestRun_PositionalInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-log-level", "warn", input}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Girvan-Newman communities")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)
	bad := writeFile(t, dir, "bad.txt", "1 2 3\n")
	empty := writeFile(t, dir, "empty.txt", "# nothing\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", nil, "Input"},
		{"unknown format", []string{"-input", input, "-format", "xml"}, "Format"},
		{"bad ratio", []string{"-input", input, "-patience-ratio", "3"}, "PatienceRatio"},
		{"bad form", []string{"-input", input, "-modularity", "louvain"}, "Modularity"},
		{"missing file", []string{"-input", filepath.Join(dir, "nope.txt")}, "failed to open edge list"},
		{"odd tokens", []string{"-input", bad}, "line 1"},
		{"no edges", []string{"-input", empty}, "no edges"},
		{"extra args", []string{input, input}, "unexpected arguments"},
		{"unknown flag", []string{"-workers", "4"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q should mention %q", err, tt.want)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edges.txt", bridgeEdges)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-input", input, "-format", "json"}, &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, stdout.String(), `"stop_reason": "cancelled"`)
}
