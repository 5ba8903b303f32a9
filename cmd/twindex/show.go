package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twindex"
	"github.com/yacobolo/twindex/internal/preview"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the indexed utility classes for a project",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		for _, class := range idx.Classes {
			fmt.Println(class)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show CLASS",
	Short: "Show the CSS declarations indexed for a utility class",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}

		class := args[0]
		body, err := idx.Rules(class)
		if err != nil {
			return err
		}

		useColors := getBoolWithFallback("color", "color", false)
		fmt.Println(preview.Heading(class, useColors))
		if formatted := preview.Format(body, useColors); formatted != "" {
			fmt.Print(formatted)
		} else if idx.Compiled {
			fmt.Println(preview.Notice("no rules were generated for this class", useColors))
		} else {
			fmt.Println(preview.Notice("index was built without compilation; run `twindex build` with Tailwind installed", useColors))
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, showCmd} {
		f := cmd.Flags()
		f.String("root", "", "Project root (default: resolved from the current directory)")
		f.String("cache-dir", "", "Cache directory (default: derived from the project root)")
	}
}

// openIndex opens the cache for the invocation's project. A missing or
// unreadable cache is a hard failure here: there is nothing to show.
func openIndex() (*twindex.Index, error) {
	cache := twindex.NewCacheManager(getStringWithFallback("cache-root", "cache-root", ""))

	cacheDir := getStringWithFallback("cache-dir", "build.cache-dir", "")
	if cacheDir == "" {
		project, err := resolveProject()
		if err != nil {
			return nil, err
		}
		cacheDir = cache.ProjectDir(project.Root)
	}

	idx, err := cache.Open(cacheDir)
	if err != nil {
		return nil, fmt.Errorf("no readable index (build one with `twindex build`): %w", err)
	}
	return idx, nil
}
