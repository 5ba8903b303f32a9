// Package twindex builds and caches per-project indexes of Tailwind CSS
// utility classes, mapping each class name to the CSS declarations the
// project's own Tailwind build generates for it.
//
// twindex drives the project's installed Tailwind compiler against a
// synthetic safelist so that previews reflect the project's real theme, and
// persists the result in a project-scoped cache that interactive pickers can
// read without re-running a build.
//
// # Building an index
//
// Build an index for a resolved project:
//
//	builder := twindex.NewBuilder(twindex.BuildConfig{Verbose: true})
//	cache := twindex.NewCacheManager("")
//	project := twindex.Project{Root: "/src/app", ConfigPath: "/src/app/tailwind.config.js"}
//	result, err := builder.Build(ctx, project, cache.ProjectDir(project.Root))
//
// A build never fails because Tailwind is absent or the wrong version; it
// degrades to an index with an accurate class list and empty rule bodies,
// with result.Compiled reporting which mode was produced.
//
// # Reading an index
//
// Open a previously built index:
//
//	idx, err := cache.Open(cache.ProjectDir(project.Root))
//	body, err := idx.Rules("bg-red-500")
//
// # CLI Tool
//
// twindex also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/twindex/cmd/twindex@latest
package twindex
