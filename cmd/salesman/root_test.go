// End-to-end command tests: flag parsing, config precedence, and the
// pipeline output on deterministic seeds.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCmd executes a fresh root command with args and returns its output.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRun_Basic(t *testing.T) {
	out := runCmd(t, "--cities", "5", "--seed", "1")
	require.Contains(t, out, "Optimal path length:")
	require.Contains(t, out, "path: 0 > ")
	// (5−1)! complete tours scored.
	require.Contains(t, out, "scored 24 tours")
	// Debug output stays off by default.
	require.NotContains(t, out, "Grid:")
	require.NotContains(t, out, "Plot:")
}

func TestRun_Deterministic(t *testing.T) {
	a := runCmd(t, "--cities", "6", "--seed", "42")
	b := runCmd(t, "--cities", "6", "--seed", "42")
	// Strip the timing line; wall clock is the only nondeterminism.
	require.Equal(t, dropTimingLine(a), dropTimingLine(b))
}

func TestRun_Debug(t *testing.T) {
	out := runCmd(t, "--cities", "4", "--seed", "7", "--debug")
	require.Contains(t, out, "Plot:")
	require.Contains(t, out, "Grid:")
	require.Contains(t, out, "City 0:")
	require.Contains(t, out, "New min:")
}

func TestRun_ShowAllTraversals(t *testing.T) {
	out := runCmd(t, "--cities", "4", "--seed", "7", "--debug", "--show-all")
	// Every one of the (4−1)! = 6 scored tours is printed, plus the winner.
	require.GreaterOrEqual(t, strings.Count(out, "path: 0 > "), 6)
}

func TestRun_HalveReflections(t *testing.T) {
	out := runCmd(t, "--cities", "5", "--seed", "1", "--halve-reflections")
	require.Contains(t, out, "scored 12 tours", "(5−1)!/2 scored leaves")
}

func TestRun_ConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "city_count: 5\nseed: 1\n")

	// File alone drives the run.
	out := runCmd(t, "--config", path)
	require.Contains(t, out, "scored 24 tours")

	// Explicit flag beats the file.
	out = runCmd(t, "--config", path, "--cities", "4")
	require.Contains(t, out, "scored 6 tours")
}

func TestRun_BadInput(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--cities", "0"})
	require.Error(t, cmd.Execute())
}

// dropTimingLine removes the "scored … in …" diagnostics line.
func dropTimingLine(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if strings.Contains(ln, " in ") && strings.Contains(ln, "scored ") {
			continue
		}
		kept = append(kept, ln)
	}
	return strings.Join(kept, "\n")
}
