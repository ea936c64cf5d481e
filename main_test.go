package main

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandDefaults(t *testing.T) {
	output, err := executeRoot(t)
	require.NoError(t, err)

	snapshots := parseSnapshots(t, output)
	require.Len(t, snapshots, 10)
	for _, v := range snapshots[0] {
		assert.GreaterOrEqual(t, v, MinValue)
		assert.Less(t, v, MaxValue)
	}
	assert.True(t, slices.IsSorted(snapshots[9]))
}

func TestRootCommandSeedIsReproducible(t *testing.T) {
	first, err := executeRoot(t, "--seed", "7", "--size", "6")
	require.NoError(t, err)
	second, err := executeRoot(t, "--seed", "7", "--size", "6")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, parseSnapshots(t, first), 6)
}

func TestRootCommandCustomRange(t *testing.T) {
	output, err := executeRoot(t, "-n", "20", "--min", "-5", "--max", "5", "--stats")
	require.NoError(t, err)

	snapshots := parseSnapshots(t, output)
	require.Len(t, snapshots, 20)
	for _, v := range snapshots[0] {
		assert.GreaterOrEqual(t, v, -5)
		assert.Less(t, v, 5)
	}
}

func TestRootCommandSummaryMode(t *testing.T) {
	output, err := executeRoot(t, "--mode", "summary", "--size", "8", "--seed", "1")
	require.NoError(t, err)

	snapshots := parseSnapshots(t, output)
	require.Len(t, snapshots, 2)
	assert.True(t, slices.IsSorted(snapshots[1]))
}

func TestRootCommandZeroSize(t *testing.T) {
	output, err := executeRoot(t, "--size", "0")
	require.NoError(t, err)

	assert.Equal(t, traceHeader+"\n\n", output)
}

func TestRootCommandRejectsInvalidFlags(t *testing.T) {
	cases := [][]string{
		{"--size", "-1"},
		{"--min", "90", "--max", "20"},
		{"--mode", "bogus"},
		{"--algorithm", "bogo"},
		{"--min", "-9223372036854775808", "--max", "9223372036854775807", "-n", "3"},
		{"extra-arg"},
	}
	for _, args := range cases {
		output, err := executeRoot(t, args...)
		assert.Error(t, err, "args %v", args)
		assert.Empty(t, output, "args %v", args)
	}
}

func TestRootCommandAlgorithms(t *testing.T) {
	for _, algorithm := range Algorithms() {
		output, err := executeRoot(t, "--algorithm", string(algorithm), "--seed", "5", "-n", "12")
		require.NoError(t, err, "algorithm %s", algorithm)

		snapshots := parseSnapshots(t, output)
		last := snapshots[len(snapshots)-1]
		assert.Len(t, last, 12)
		assert.True(t, slices.IsSorted(last), "algorithm %s", algorithm)
	}
}

func TestRootCommandDefaultMatchesSelectionTrace(t *testing.T) {
	output, err := executeRoot(t, "--seed", "3")
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, NewSortingDemo(10, NewSeededRandomizer(3)).Sort(&want))
	assert.Equal(t, want.String(), output)
}

func TestExitWithErrorLogsFatal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))

	assert.Panics(t, func() {
		exitWithError(logger, errors.New("range [0, 0) is too wide"))
	})

	entries := logs.FilterMessage("sortdemo failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.FatalLevel, entries[0].Level)
	assert.Equal(t, "range [0, 0) is too wide", entries[0].ContextMap()["error"])
}

func TestRunWithNopLogger(t *testing.T) {
	config := DefaultSortConfig()
	config.Size = 4
	config.Seed = 11
	config.Stats = true
	var buf bytes.Buffer

	require.NoError(t, run(config, &buf, zap.NewNop()))

	snapshots := parseSnapshots(t, buf.String())
	require.Len(t, snapshots, 4)
	assert.True(t, slices.IsSorted(snapshots[3]))
}
