package twindex

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/singleflight"
)

// Builder runs the index pipeline: enumerate, expand, gate, compile,
// extract, persist. Stages execute strictly sequentially; the compiler
// subprocess is the only suspension point.
type Builder struct {
	enumerator *Enumerator
	compiler   *Compiler
	cache      *CacheManager
	verbose    bool

	// Overlapping build requests for the same cache directory would race
	// on the final artifact paths; they are coalesced per directory
	// instead, with late arrivals sharing the in-flight result.
	builds singleflight.Group
}

// NewBuilder returns a builder using the platform-default cache root. Use
// NewBuilderWithCache to direct output elsewhere.
func NewBuilder(config BuildConfig) *Builder {
	return NewBuilderWithCache(config, NewCacheManager(""))
}

// NewBuilderWithCache returns a builder that persists through cache.
func NewBuilderWithCache(config BuildConfig, cache *CacheManager) *Builder {
	return &Builder{
		enumerator: &Enumerator{NodeCommand: config.NodeCommand, Verbose: config.Verbose},
		compiler:   &Compiler{Command: config.CompilerCommand, Verbose: config.Verbose},
		cache:      cache,
		verbose:    config.Verbose,
	}
}

// Cache returns the manager the builder persists through.
func (b *Builder) Cache() *CacheManager {
	return b.cache
}

// Build produces a fresh index for the project in cacheDir. Enumeration
// and compilation failures degrade the result rather than failing it: the
// class list is always persisted, and Compiled reports whether real rule
// bodies back it. Only cache I/O errors are returned. Concurrent calls for
// the same cacheDir share one execution.
func (b *Builder) Build(ctx context.Context, project Project, cacheDir string) (*BuildResult, error) {
	v, err, _ := b.builds.Do(cacheDir, func() (any, error) {
		return b.build(ctx, project, cacheDir)
	})
	if err != nil {
		return nil, err
	}
	return v.(*BuildResult), nil
}

func (b *Builder) build(ctx context.Context, project Project, cacheDir string) (*BuildResult, error) {
	enum := b.enumerator.Enumerate(ctx, project)
	classes := candidateSet(ExpandVariants(enum.Classes))

	if b.verbose {
		fmt.Printf("Enumerated %d candidate classes (%s)\n", len(classes), enum.Source)
	}

	compiled := false
	stylesheet := ""
	diagnostics := ""

	if err := CheckTailwindVersion(project.Root); err != nil {
		diagnostics = err.Error()
		if b.verbose {
			fmt.Printf("Skipping compilation: %v\n", err)
		}
	} else {
		out, err := b.compiler.Compile(ctx, project, classes)
		if err != nil {
			diagnostics = err.Error()
			if b.verbose {
				fmt.Printf("Compilation failed: %v\n", err)
			}
		} else {
			stylesheet = out
			compiled = true
		}
	}

	rules := ExtractRules(stylesheet, classes)
	if err := b.cache.Write(cacheDir, classes, rules, compiled); err != nil {
		return nil, err
	}

	if b.verbose {
		fmt.Printf("Wrote index for %s to %s (compiled=%v)\n", project.Root, cacheDir, compiled)
	}

	return &BuildResult{
		Compiled:    compiled,
		Source:      enum.Source,
		ClassCount:  len(classes),
		CacheDir:    cacheDir,
		Diagnostics: diagnostics,
	}, nil
}

// candidateSet sorts and deduplicates the expanded class list into its
// final persisted form.
func candidateSet(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
