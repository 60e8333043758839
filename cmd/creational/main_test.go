package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/internal/config"
	"github.com/sghaida/creational/prototype"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// execute runs the CLI with args and returns exit code, stdout and stderr.
// The environment is pinned to env and no .env file is read.
func execute(t *testing.T, env map[string]string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.envFile = filepath.Join(t.TempDir(), "none.env")
	a.getenv = func(k string) string { return env[k] }
	code := runApp(a, args)
	return code, stdout.String(), stderr.String()
}

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

//
// -----------------------------------------------------------------------------
// list
// -----------------------------------------------------------------------------

func TestList(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, nil, "list")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	for i, name := range []string{"abstractfactory", "builder", "factorymethod", "prototype"} {
		assert.True(t, strings.HasPrefix(lines[i], name+" "), lines[i])
	}
}

func TestList_RejectsArgs(t *testing.T) {
	t.Parallel()

	code, _, stderr := execute(t, nil, "list", "extra")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "creational:")
}

//
// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

// TestRun_SingleDemoMatchesPackageTranscript verifies a single demo prints no header.
func TestRun_SingleDemoMatchesPackageTranscript(t *testing.T) {
	t.Parallel()

	var want bytes.Buffer
	require.NoError(t, builder.Run(&want))

	code, stdout, stderr := execute(t, nil, "run", "builder", "--log-level", "warn")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, want.String(), stdout)
	assert.Empty(t, stderr)
}

func TestRun_All(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, nil, "run", "--all")
	require.Equal(t, 0, code, stderr)

	for _, header := range []string{"=== abstractfactory ===", "=== builder ===", "=== factorymethod ===", "=== prototype ==="} {
		assert.Contains(t, stdout, header)
	}
	assert.True(t, strings.HasPrefix(stdout, "=== abstractfactory ===\n"))
	assert.Contains(t, stderr, "running demo")
	assert.Contains(t, stderr, "run_id")
}

func TestRun_UnknownDemoRunsNothing(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, nil, "run", "builder", "singleton")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `catalog: unknown demo "singleton"`)
}

func TestRun_NoDemosSelected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTempFile(t, dir, "empty.yaml", "log_level: info\n")

	code, _, stderr := execute(t, nil, "run", "--config", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, errNoDemos.Error())
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, nil, "run", "builder", "--log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "config: invalid")
}

// TestRun_ConfigDemosAndSeeds verifies demos and prototype seeds come from the
// config file when no names are passed.
func TestRun_ConfigDemosAndSeeds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTempFile(t, dir, "creational.yaml", `
log_level: debug
demos: [prototype]
prototypes:
  - key: EXTRA
    variant: 2
    value: 5
    extra: 55
`)

	code, stdout, stderr := execute(t, nil, "run", "--config", path)
	require.Equal(t, 0, code, stderr)

	assert.True(t, strings.HasPrefix(stdout, "Listing available prototypes:\nPROTOTYPE_1\nEXTRA\n"), stdout)
	assert.Contains(t, stderr, "prototype stored")
	assert.Contains(t, stderr, "config loaded")
}

func TestRun_LogLevelFlagCaseInsensitive(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, nil, "run", "builder", "--log-level", "DEBUG")
	require.Equal(t, 0, code, stderr)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stderr, "config loaded")
}

// TestRun_PinnedEnvironment verifies demos come from the pinned
// environment rather than the process one.
func TestRun_PinnedEnvironment(t *testing.T) {
	t.Parallel()

	env := map[string]string{config.EnvDemos: "factorymethod", config.EnvLogLevel: "warn"}
	code, stdout, stderr := execute(t, env, "run")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "App: Launched with the ConcreteCreator1.\n"), stdout)
	assert.Empty(t, stderr)
}

// TestRun_DotEnvFile verifies the .env seam feeds demo selection.
func TestRun_DotEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.envFile = writeTempFile(t, dir, ".env", "CREATIONAL_DEMOS=builder\nCREATIONAL_LOG_LEVEL=error\n")
	a.getenv = func(string) string { return "" }

	require.Equal(t, 0, runApp(a, []string{"run"}), stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Standard basic product:\n"), stdout.String())
}

func TestSeedPrototypes(t *testing.T) {
	t.Parallel()

	got := seedPrototypes([]config.PrototypeSeed{
		{Key: "A", Variant: 1, Value: 1, Extra: 10},
		{Key: "B", Variant: 2, Value: 2, Extra: 20},
	})
	require.Len(t, got, 2)
	assert.Equal(t, prototype.NewConcretePrototype1("A", 1, 10), got[0])
	assert.Equal(t, prototype.NewConcretePrototype2("B", 2, 20), got[1])
}
