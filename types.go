package twindex

// Project identifies one Tailwind project: the directory the compiler runs
// in and the configuration file the build is driven by. Both come from the
// resolver (or explicit CLI flags) and are immutable for one build.
type Project struct {
	Root       string // project root, working directory for the compiler
	ConfigPath string // path to tailwind.config.{js,cjs,mjs,ts}
}

// Source records which path produced the enumerated class universe.
type Source string

const (
	// SourceIntrospected means the names came from the project-local
	// introspection library and reflect the project's configured theme.
	SourceIntrospected Source = "introspected"
	// SourceCatalog means the bundled static catalog was used.
	SourceCatalog Source = "catalog"
)

// Enumeration is the result of enumerating the candidate class universe.
// The fallback trigger is an enumerated condition, not a swallowed error:
// callers can always tell which path produced the names.
type Enumeration struct {
	Source  Source
	Classes []string
}

// BuildConfig holds builder configuration.
type BuildConfig struct {
	CompilerCommand []string // compiler invocation, default {"npx", "tailwindcss"}
	NodeCommand     []string // introspection runtime, default {"node"}
	Verbose         bool     // log pipeline stages and compiler diagnostics
}

// BuildResult reports the outcome of one build invocation.
type BuildResult struct {
	Compiled    bool   // true if the Tailwind compiler ran and its output was indexed
	Source      Source // where the class universe came from
	ClassCount  int    // size of the persisted candidate set
	CacheDir    string // directory the index was written to
	Diagnostics string // version-gate or compiler diagnostics when Compiled is false
}
