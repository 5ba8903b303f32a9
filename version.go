package twindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// acceptedMajor is the Tailwind major version line the compiler driver
// knows how to invoke.
const acceptedMajor = 3

// VersionError reports that the project's installed Tailwind cannot be used
// for compilation: absent, unreadable manifest, or an unsupported major
// version. The builder degrades to an uncompiled index when it sees one.
type VersionError struct {
	Msg string
}

func (e *VersionError) Error() string {
	return e.Msg
}

// CheckTailwindVersion resolves the installed Tailwind package manifest
// under root and verifies its declared version is the accepted major line.
func CheckTailwindVersion(root string) error {
	manifest := filepath.Join(root, "node_modules", "tailwindcss", "package.json")
	// #nosec G304 - path is derived from the resolved project root
	data, err := os.ReadFile(manifest)
	if err != nil {
		return &VersionError{Msg: fmt.Sprintf("tailwindcss is not installed in %s: %v", root, err)}
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return &VersionError{Msg: fmt.Sprintf("unreadable tailwindcss manifest %s: %v", manifest, err)}
	}
	if pkg.Version == "" {
		return &VersionError{Msg: fmt.Sprintf("tailwindcss manifest %s declares no version", manifest)}
	}

	v, err := semver.NewVersion(pkg.Version)
	if err != nil {
		return &VersionError{Msg: fmt.Sprintf("invalid tailwindcss version %q: %v", pkg.Version, err)}
	}
	if v.Major() != acceptedMajor {
		return &VersionError{Msg: fmt.Sprintf("tailwindcss %s is installed, only v%d is supported", pkg.Version, acceptedMajor)}
	}

	return nil
}
