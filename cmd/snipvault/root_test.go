package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/snipvault/internal/apperror"
)

// runCmd executes one full invocation the way main() would, with captured
// streams. Each call builds a fresh command — flag values must not leak
// between invocations.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// useTempStorage points both the store and the log file into a temp dir.
func useTempStorage(t *testing.T, kind, filename string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, filename)
	t.Setenv("SNIPPETS_APP_STORAGE", kind+":"+path)
	t.Setenv("SNIPPETS_APP_LOG_PATH", filepath.Join(dir, "test.log"))
	return path
}

func TestNoArgsPrintsUsage(t *testing.T) {
	// No storage env needed — usage short-circuits before config loads.
	out, err := runCmd(t, "")
	require.NoError(t, err, "asking for usage is not an error")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--name <name> [--download URL]")
	assert.Contains(t, out, "--read <name>")
	assert.Contains(t, out, "--delete <name>")
}

func TestCreateThenRead_JSON(t *testing.T) {
	useTempStorage(t, "JSON", "s.json")

	out, err := runCmd(t, "hello world", "--name", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Snippet saved.\n", out)

	out, err = runCmd(t, "", "--read", "greeting")
	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.True(t, strings.HasPrefix(lines[0], "Created at: "), "first line = %q", lines[0])
	assert.Equal(t, "hello world\n", lines[1])
}

func TestReadMissing(t *testing.T) {
	useTempStorage(t, "JSON", "s.json")

	out, err := runCmd(t, "", "--read", "missing")
	require.NoError(t, err, "a missing snippet is a normal outcome")
	assert.Equal(t, "Snippet not found.\n", out)
}

func TestCreateDeleteLifecycle_SQLite(t *testing.T) {
	useTempStorage(t, "SQLITE", "s.db")

	_, err := runCmd(t, "alpha content", "--name", "a")
	require.NoError(t, err)
	_, err = runCmd(t, "beta content", "--name", "b")
	require.NoError(t, err)

	out, err := runCmd(t, "", "--delete", "a")
	require.NoError(t, err)
	assert.Equal(t, "Snippet deleted.\n", out)

	out, err = runCmd(t, "", "--read", "a")
	require.NoError(t, err)
	assert.Equal(t, "Snippet not found.\n", out)

	out, err = runCmd(t, "", "--read", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "beta content")
}

func TestDeleteMissLeavesFileUntouched(t *testing.T) {
	path := useTempStorage(t, "JSON", "s.json")

	_, err := runCmd(t, "keep me", "--name", "keeper")
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := runCmd(t, "", "--delete", "nope")
	require.NoError(t, err)
	assert.Equal(t, "Snippet not found.\n", out)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "delete-miss rewrote the store")
}

func TestCreateOverwrite(t *testing.T) {
	useTempStorage(t, "JSON", "s.json")

	_, err := runCmd(t, "first", "--name", "x")
	require.NoError(t, err)
	_, err = runCmd(t, "second", "--name", "x")
	require.NoError(t, err)

	out, err := runCmd(t, "", "--read", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "first")
}

func TestCreateWithDownload(t *testing.T) {
	useTempStorage(t, "JSON", "s.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote snippet body"))
	}))
	defer srv.Close()

	out, err := runCmd(t, "stdin is ignored here", "--name", "remote", "--download", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Snippet saved.\n", out)

	out, err = runCmd(t, "", "--read", "remote")
	require.NoError(t, err)
	assert.Contains(t, out, "remote snippet body")
}

func TestMissingStorageEnvIsFatal(t *testing.T) {
	t.Setenv("SNIPPETS_APP_STORAGE", "")
	t.Setenv("SNIPPETS_APP_LOG_PATH", filepath.Join(t.TempDir(), "test.log"))

	_, err := runCmd(t, "content", "--name", "x")
	assert.True(t, errors.Is(err, apperror.ErrConfig), "error = %v, want ErrConfig", err)
}

func TestBadStorageSpecIsFatal(t *testing.T) {
	t.Setenv("SNIPPETS_APP_STORAGE", "REDIS:/tmp/nope")
	t.Setenv("SNIPPETS_APP_LOG_PATH", filepath.Join(t.TempDir(), "test.log"))

	_, err := runCmd(t, "", "--read", "x")
	assert.True(t, errors.Is(err, apperror.ErrConfig), "error = %v, want ErrConfig", err)
}

func TestMutuallyExclusiveIntents(t *testing.T) {
	useTempStorage(t, "JSON", "s.json")

	_, err := runCmd(t, "", "--name", "a", "--read", "b")
	assert.Error(t, err, "two intent flags at once must be rejected")
}
