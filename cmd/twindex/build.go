package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twindex"
	"github.com/yacobolo/twindex/internal/resolver"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the utility-class index for a project",
	Long: `Enumerate the project's candidate utility classes, compile real CSS for
them through the project's own Tailwind build, and persist the result in
the project's cache directory.

When Tailwind is absent or not the supported major version, the build
degrades: the class list is still written, with empty rule bodies.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBuild(cmd.Context())
	},
}

func init() {
	f := buildCmd.Flags()
	f.String("root", "", "Project root (default: resolved from the current directory)")
	f.String("tailwind-config", "", "Tailwind config file path (default: resolved from the project root)")
	f.String("cache-dir", "", "Output cache directory (default: derived from the project root)")
	f.StringSlice("compiler-command", nil, "Compiler invocation (default: npx tailwindcss)")
	f.StringSlice("node-command", nil, "Node runtime for theme introspection (default: node)")
	f.Bool("force", false, "Rebuild even when the cache is fresh")
}

func runBuild(ctx context.Context) error {
	project, err := resolveProject()
	if err != nil {
		return err
	}

	cache := twindex.NewCacheManager(getStringWithFallback("cache-root", "cache-root", ""))
	cacheDir := getStringWithFallback("cache-dir", "build.cache-dir", "")
	if cacheDir == "" {
		cacheDir = cache.ProjectDir(project.Root)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	force := getBoolWithFallback("force", "build.force", false)

	if !force && !twindex.NeedsRebuild(project.ConfigPath, cacheDir) {
		if !quiet {
			fmt.Printf("Index for %s is fresh (%s)\n", project.Root, cacheDir)
		}
		return nil
	}

	builder := twindex.NewBuilderWithCache(buildBuildConfig(), cache)
	result, err := builder.Build(ctx, project, cacheDir)
	if err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	if !quiet {
		fmt.Printf("Indexed %d classes for %s\n", result.ClassCount, project.Root)
		fmt.Printf("  Source: %s\n", result.Source)
		fmt.Printf("  Compiled: %v\n", result.Compiled)
		fmt.Printf("  Cache: %s\n", result.CacheDir)
		if !result.Compiled && result.Diagnostics != "" {
			if getBoolWithFallback("verbose", "verbose", false) {
				fmt.Printf("  Degraded: %s\n", result.Diagnostics)
			} else {
				fmt.Println("  Degraded build; run with --verbose for diagnostics")
			}
		}
	}

	return nil
}

// resolveProject produces the project for this invocation: explicit flags
// when given, the resolver otherwise. Explicit paths that do not exist are
// invalid inputs, reported before any work begins.
func resolveProject() (twindex.Project, error) {
	root := getStringWithFallback("root", "build.root", "")
	configPath := getStringWithFallback("tailwind-config", "build.tailwind-config", "")

	if root != "" {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return twindex.Project{}, usageErrorf("project root %q is not a directory", root)
		}
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return twindex.Project{}, usageErrorf("tailwind config %q does not exist", configPath)
		}
	}

	if root != "" && configPath != "" {
		return twindex.Project{Root: root, ConfigPath: configPath}, nil
	}

	start := root
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return twindex.Project{}, err
		}
		start = cwd
	}

	candidates, err := resolver.Resolve(start)
	if err != nil {
		return twindex.Project{}, err
	}
	if len(candidates) > 1 {
		paths := make([]string, len(candidates))
		for i, c := range candidates {
			paths[i] = c.ConfigPath
		}
		return twindex.Project{}, fmt.Errorf(
			"multiple tailwind configs found, pick one with --tailwind-config:\n  %s",
			strings.Join(paths, "\n  "))
	}

	picked := candidates[0]
	if configPath != "" {
		picked.ConfigPath = configPath
	}
	return twindex.Project{Root: picked.Root, ConfigPath: picked.ConfigPath}, nil
}
