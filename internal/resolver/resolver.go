// Package resolver locates a Tailwind project's configuration file in
// single-root and monorepo layouts, producing the (root, configPath) pair
// the index builder runs against.
package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Project pairs a project root with its Tailwind configuration file.
type Project struct {
	Root       string
	ConfigPath string
}

// ErrNoConfig is returned when no Tailwind configuration can be found at or
// below the search root.
var ErrNoConfig = errors.New("no tailwind config found")

// configNames are the configuration filenames recognized, in precedence
// order within one directory.
var configNames = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.ts",
}

// monorepoPattern finds configs anywhere below a workspace root.
const monorepoPattern = "**/tailwind.config.{js,cjs,mjs,ts}"

// Resolve finds candidate projects for a start directory. It first walks
// upward from start looking for a config next to (or above) it, stopping at
// a .git boundary; an upward hit is a single unambiguous candidate. With no
// upward hit it searches the whole tree below the workspace root for a
// monorepo layout and returns every candidate found, leaving the pick to
// the caller. No candidates at all is ErrNoConfig.
func Resolve(start string) ([]Project, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	if p, ok := findUpward(start); ok {
		return []Project{p}, nil
	}

	candidates, err := findBelow(workspaceRoot(start))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoConfig
	}
	return candidates, nil
}

// findUpward walks from dir toward the filesystem root, returning the first
// directory containing a config file. The walk stops after a directory
// containing .git, which bounds the search to one repository.
func findUpward(dir string) (Project, bool) {
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return Project{Root: dir, ConfigPath: path}, true
			}
		}

		atGitRoot := false
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			atGitRoot = true
		}

		parent := filepath.Dir(dir)
		if atGitRoot || parent == dir {
			return Project{}, false
		}
		dir = parent
	}
}

// findBelow globs the tree under root for config files, skipping
// node_modules and anything the root .gitignore excludes.
func findBelow(root string) ([]Project, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(root, monorepoPattern))
	if err != nil {
		return nil, err
	}

	// Gracefully degrade when the workspace has no .gitignore.
	matcher, _ := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))

	var candidates []Project
	for _, match := range matches {
		rel, err := filepath.Rel(root, match)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isVendored(rel) {
			continue
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			continue
		}
		candidates = append(candidates, Project{
			Root:       filepath.Dir(match),
			ConfigPath: match,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ConfigPath < candidates[j].ConfigPath
	})
	return candidates, nil
}

// workspaceRoot walks upward from dir to the nearest .git directory,
// falling back to dir itself.
func workspaceRoot(dir string) string {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

func isVendored(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == "node_modules" || part == ".git" {
			return true
		}
	}
	return false
}
