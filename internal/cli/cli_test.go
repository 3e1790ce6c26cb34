package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flis/internal/cli"
	"github.com/katalvlaran/flis/leafmap"
)

// run executes flis with args and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := cli.NewRootCommand(&logs)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve_Family(t *testing.T) {
	out, logs, err := run(t, "solve", "--family", "cycle", "--n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 5 vertices, 5 edges, connected\n")
	assert.Contains(t, out, "algorithm: general (dist)\n")
	assert.Contains(t, out, "leaf map: {0: 0, 1: 0, 2: 2, 3: 2, 4: 2, 5: None}\n")
	assert.Contains(t, logs, "Solved cycle(5)")
}

func TestSolve_FileWithWitnesses(t *testing.T) {
	path := writeFile(t, "p3.txt", "# path\na -- b -- c\n")
	out, _, err := run(t, "solve", "--file", writeFile(t, "split.txt", "a -- b; c"))
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 3 vertices, 1 edges, 2 components\n")

	out, _, err = run(t, "solve", "--file", path, "--algorithm", "tree", "--witnesses")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: tree (dist)\n")
	assert.Contains(t, out, "leaf map: {0: 0, 1: 0, 2: 2, 3: 2}\n")
	assert.Contains(t, out, "size 3, 2 leaves: [")
}

func TestSolve_InputErrors(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--family", "cycle", "--n", "4", "--file", "x.txt")
	assert.Error(t, err, "flags are exclusive")

	_, _, err = run(t, "solve", "--family", "cycle", "--n", "5", "--algorithm", "tree")
	assert.ErrorIs(t, err, leafmap.ErrUnsupportedInput)

	_, _, err = run(t, "solve", "--file", writeFile(t, "bad.txt", "a -- a"))
	assert.Error(t, err)
}

func TestSolve_Store(t *testing.T) {
	dir := t.TempDir()
	args := []string{"solve", "--family", "petersen", "--store", dir}

	first, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, first, "algorithm: general (dist)\n")

	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, second, "algorithm: general (dist, cached)\n")
	assert.Contains(t, second, "leaf map: {0: 0, 1: 0, 2: 2, 3: 2, 4: 3, 5: 3, 6: 4, 7: 3, 8: None, 9: None, 10: None}\n")
}

func TestSolve_StoreWitnessCap(t *testing.T) {
	dir := t.TempDir()
	base := []string{"solve", "--family", "petersen", "--store", dir, "--witnesses"}
	const size6 = "size 6, 4 leaves:"

	capped, _, err := run(t, append(base, "--max-witnesses", "1")...)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(capped, size6))

	// a capped record cannot answer an uncapped request
	full, logs, err := run(t, append(base, "-v")...)
	require.NoError(t, err)
	assert.Contains(t, full, "algorithm: general (dist)\n")
	assert.Contains(t, logs, "catalog record capped")
	all := strings.Count(full, size6)
	assert.Greater(t, all, 1)

	again, _, err := run(t, base...)
	require.NoError(t, err)
	assert.Contains(t, again, "algorithm: general (dist, cached)\n")
	assert.Equal(t, all, strings.Count(again, size6))

	// the uncapped record serves smaller caps
	two, _, err := run(t, append(base, "--max-witnesses", "2")...)
	require.NoError(t, err)
	assert.Contains(t, two, "(dist, cached)")
	assert.Equal(t, 2, strings.Count(two, size6))

	_, _, err = run(t, "render", "--family", "petersen", "--store", dir, "--size", "6", "--index", strconv.Itoa(all-1))
	assert.NoError(t, err)
}

func TestSolve_StoreHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := writeFile(t, "flis.toml", `store = "~/catalog"`)

	_, _, err := run(t, "--config", cfg, "solve", "--family", "cycle", "--n", "4")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(home, "catalog"))
	assert.NoDirExists(t, "~")

	out, _, err := run(t, "solve", "--family", "cycle", "--n", "4", "--store", "~/catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "(dist, cached)")
}

func TestSolve_TreeShape(t *testing.T) {
	out, _, err := run(t, "solve", "--family", "balanced-binary", "--n", "2", "--algorithm", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "tree: 1-caterpillar\n")
	assert.Contains(t, out, "difference word: 1001 (prefix normal)\n")

	out, _, err = run(t, "solve", "--family", "cycle", "--n", "4")
	require.NoError(t, err)
	assert.NotContains(t, out, "tree:")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "flis.toml", `
algorithm = "tree"
strategy = "naive"
colour = "blue"
`)

	_, _, err := run(t, "--config", cfg, "solve", "--family", "cycle", "--n", "4")
	assert.ErrorIs(t, err, leafmap.ErrUnsupportedInput, "config selects the tree DP")

	out, logs, err := run(t, "--config", cfg, "solve", "--family", "cycle", "--n", "4", "--algorithm", "general")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: general (naive)\n")
	assert.Contains(t, logs, "unknown config key")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "solve", "--family", "cycle", "--n", "4")
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flis.log")
	_, logs, err := run(t, "--log-file", path, "-v", "solve", "--family", "star", "--n", "5")
	require.NoError(t, err)
	assert.Empty(t, logs)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Solved star(5)")
}

func TestEnumerate(t *testing.T) {
	out, _, err := run(t, "enumerate", "--family", "path", "--n", "3", "--count")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, "enumerate", "--family", "path", "--n", "3", "--size", "2")
	require.NoError(t, err)
	assert.Equal(t, "[0 1]\n[1 2]\n", out)

	out, _, err = run(t, "enumerate", "--family", "complete", "--n", "6", "--limit", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\n")))
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "render", "--family", "cycle", "--n", "5", "--size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "graph G {")
	assert.Contains(t, out, "penwidth=3")
	assert.Contains(t, out, `label="cycle(5): 3 vertices, 2 leaves";`)

	dir := t.TempDir()
	svg := filepath.Join(dir, "c5.svg")
	_, _, err = run(t, "render", "--family", "cycle", "--n", "5", "--size", "4", "--out", svg)
	require.NoError(t, err)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	dot := filepath.Join(dir, "c5.dot")
	_, _, err = run(t, "render", "--family", "cycle", "--n", "5", "--size", "2", "--out", dot)
	require.NoError(t, err)
	data, err = os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph G {")

	_, _, err = run(t, "render", "--family", "cycle", "--n", "5", "--size", "5")
	assert.Error(t, err, "C5 has no induced subtree on all vertices")

	_, _, err = run(t, "render", "--family", "cycle", "--n", "5")
	assert.Error(t, err, "--size is required")
}

func TestClassify(t *testing.T) {
	out, _, err := run(t, "classify", "--family", "path", "--family", "star",
		"--from", "2", "--to", "4", "--algorithm", "tree", "-j", "2")
	require.NoError(t, err)
	assert.Equal(t, `{0: 0, 1: 0, 2: 2}: path(2) star(2)
{0: 0, 1: 0, 2: 2, 3: 2}: path(3) star(3)
{0: 0, 1: 0, 2: 2, 3: 2, 4: 2}: path(4)
{0: 0, 1: 0, 2: 2, 3: 2, 4: 3}: star(4)
6 graphs, 4 classes, average class size 1.50
`, out)

	_, _, err = run(t, "classify")
	assert.Error(t, err)
}
