package twindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// introspectScript is evaluated by the project's Node runtime. It resolves
// the Tailwind language-service library from the project root so the
// reported names reflect the project's configured theme, and prints them as
// a JSON array on stdout. Any failure exits non-zero and selects the
// bundled catalog instead.
const introspectScript = `(async () => {
	const root = process.argv[1];
	const modPath = require.resolve("tailwindcss-language-service", { paths: [root] });
	const service = require(modPath);
	if (typeof service.getClassNames !== "function") process.exit(3);
	const names = await service.getClassNames(root);
	if (!Array.isArray(names)) process.exit(3);
	process.stdout.write(JSON.stringify(names));
})().catch(() => process.exit(3));`

// Enumerator produces the candidate class universe for a project.
type Enumerator struct {
	// NodeCommand is the runtime used for the introspection path.
	// Defaults to {"node"}.
	NodeCommand []string
	Verbose     bool
}

// Enumerate returns the candidate class universe for the project. It tries
// project-local introspection first and falls back to the bundled catalog on
// any failure; it never returns an error and the class list is never empty.
func (e *Enumerator) Enumerate(ctx context.Context, project Project) Enumeration {
	names, err := e.introspect(ctx, project)
	if err != nil {
		if e.Verbose {
			fmt.Printf("Introspection unavailable (%v), using bundled catalog\n", err)
		}
		return Enumeration{Source: SourceCatalog, Classes: catalogClasses()}
	}
	return Enumeration{Source: SourceIntrospected, Classes: names}
}

// introspect runs the Node introspection script against the project root.
func (e *Enumerator) introspect(ctx context.Context, project Project) ([]string, error) {
	command := e.NodeCommand
	if len(command) == 0 {
		command = []string{"node"}
	}

	args := append(command[1:], "-e", introspectScript, project.Root)
	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Dir = project.Root

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running introspection script: %w", err)
	}

	var names []string
	if err := json.Unmarshal(stdout.Bytes(), &names); err != nil {
		return nil, fmt.Errorf("decoding introspection output: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("introspection reported no class names")
	}
	return names, nil
}
