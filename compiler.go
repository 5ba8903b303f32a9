package twindex

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// The compiler driver materializes real Tailwind output for the candidate
// set by writing a scratch entrypoint plus a safelist document and running
// the project's compiler against the project's own configuration. The
// safelist document is the mechanism that tells a content-scanning compiler
// which utilities to generate: one element carrying every candidate class.

const (
	scratchInput    = "input.css"
	scratchSafelist = "safelist.html"
	scratchOutput   = "output.css"
	entryStylesheet = "@tailwind utilities;\n"
)

// CompileError reports a failed compiler invocation with the diagnostics
// the subprocess produced (stderr when non-empty, stdout otherwise).
type CompileError struct {
	Output string
	Err    error
}

func (e *CompileError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("tailwind compiler failed: %v\n%s", e.Err, e.Output)
	}
	return fmt.Sprintf("tailwind compiler failed: %v", e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compiler drives the external Tailwind build.
type Compiler struct {
	// Command is the compiler invocation. Defaults to {"npx", "tailwindcss"},
	// which resolves the project's locally installed binary.
	Command []string
	Verbose bool
}

// Compile materializes CSS for every class in classes and returns the
// generated stylesheet text. The scratch workspace is uniquely named per
// invocation and removed on every exit path. Cancellation and timeouts are
// the caller's: the subprocess runs under ctx.
func (c *Compiler) Compile(ctx context.Context, project Project, classes []string) (string, error) {
	scratch := filepath.Join(os.TempDir(), "twindex-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", fmt.Errorf("creating scratch workspace: %w", err)
	}
	defer os.RemoveAll(scratch)

	inputPath := filepath.Join(scratch, scratchInput)
	safelistPath := filepath.Join(scratch, scratchSafelist)
	outputPath := filepath.Join(scratch, scratchOutput)

	if err := os.WriteFile(inputPath, []byte(entryStylesheet), 0o644); err != nil {
		return "", fmt.Errorf("writing entry stylesheet: %w", err)
	}
	safelist := fmt.Sprintf("<div class=%q></div>\n", strings.Join(classes, " "))
	if err := os.WriteFile(safelistPath, []byte(safelist), 0o644); err != nil {
		return "", fmt.Errorf("writing safelist document: %w", err)
	}

	command := c.Command
	if len(command) == 0 {
		command = []string{"npx", "tailwindcss"}
	}
	args := append(command[1:],
		"-i", inputPath,
		"-o", outputPath,
		"-c", project.ConfigPath,
		"--content", safelistPath,
	)

	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Dir = project.Root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if c.Verbose {
		fmt.Printf("Running %s in %s\n", strings.Join(append([]string{command[0]}, args...), " "), project.Root)
	}

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = strings.TrimSpace(stdout.String())
		}
		return "", &CompileError{Output: diag, Err: err}
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		return "", fmt.Errorf("reading compiled stylesheet: %w", err)
	}
	return string(out), nil
}
