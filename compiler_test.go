package twindex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompiler writes a shell script that mimics the tailwind CLI surface
// the driver invokes: it captures the entry stylesheet, the safelist
// document, and the safelist path into $TWINDEX_TEST_CAPTURE, then writes
// canned CSS to the -o target.
func stubCompiler(t *testing.T) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "fake-tailwind")
	contents := `#!/bin/sh
in=""; out=""; content=""
while [ $# -gt 0 ]; do
  case "$1" in
    -i) in="$2"; shift 2 ;;
    -o) out="$2"; shift 2 ;;
    --content) content="$2"; shift 2 ;;
    *) shift ;;
  esac
done
{ cat "$in"; cat "$content"; printf '%s\n' "$content"; } > "$TWINDEX_TEST_CAPTURE"
printf '.p-0{padding:0px}\n' > "$out"
`
	require.NoError(t, os.WriteFile(script, []byte(contents), 0o755))
	return script
}

func TestCompile(t *testing.T) {
	skipWithoutShell(t)

	capture := filepath.Join(t.TempDir(), "capture")
	t.Setenv("TWINDEX_TEST_CAPTURE", capture)

	root := t.TempDir()
	project := Project{Root: root, ConfigPath: filepath.Join(root, "tailwind.config.js")}
	c := &Compiler{Command: []string{stubCompiler(t)}}

	out, err := c.Compile(context.Background(), project, []string{"p-0", "p-1"})
	require.NoError(t, err)
	assert.Equal(t, ".p-0{padding:0px}\n", out)

	captured, err := os.ReadFile(capture)
	require.NoError(t, err)
	text := string(captured)

	// Entry stylesheet requests utility generation only
	assert.Contains(t, text, "@tailwind utilities;")
	// Safelist document carries every candidate, space-joined
	assert.Contains(t, text, `class="p-0 p-1"`)

	// The scratch workspace is removed on success
	lines := strings.Split(strings.TrimSpace(text), "\n")
	scratchDir := filepath.Dir(lines[len(lines)-1])
	_, statErr := os.Stat(scratchDir)
	assert.True(t, os.IsNotExist(statErr), "scratch dir %s should be removed", scratchDir)
}

func TestCompileFailureCarriesDiagnostics(t *testing.T) {
	skipWithoutShell(t)

	root := t.TempDir()
	project := Project{Root: root, ConfigPath: filepath.Join(root, "tailwind.config.js")}

	t.Run("stderr preferred", func(t *testing.T) {
		c := &Compiler{Command: []string{"sh", "-c", "echo ignored; echo boom >&2; exit 1"}}
		_, err := c.Compile(context.Background(), project, []string{"p-0"})
		require.Error(t, err)

		var cerr *CompileError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "boom", cerr.Output)
	})

	t.Run("stdout when stderr empty", func(t *testing.T) {
		c := &Compiler{Command: []string{"sh", "-c", "echo only-stdout; exit 1"}}
		_, err := c.Compile(context.Background(), project, []string{"p-0"})
		require.Error(t, err)

		var cerr *CompileError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "only-stdout", cerr.Output)
	})

	t.Run("spawn failure", func(t *testing.T) {
		c := &Compiler{Command: []string{"/nonexistent/twindex-tailwind"}}
		_, err := c.Compile(context.Background(), project, []string{"p-0"})
		var cerr *CompileError
		assert.ErrorAs(t, err, &cerr)
	})
}
