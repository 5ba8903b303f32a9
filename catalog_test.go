package twindex

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogClasses(t *testing.T) {
	classes := catalogClasses()
	assert.NotEmpty(t, classes)

	// Representative spot checks across the documented utility surface
	expected := []string{
		// layout
		"block", "hidden", "absolute", "container", "overflow-hidden",
		// flexbox and grid
		"flex-row", "items-center", "justify-between", "grid-cols-12", "gap-4",
		// spacing and sizing
		"px-4", "-mt-2", "w-full", "h-screen", "max-w-prose", "w-1/2",
		// typography
		"text-9xl", "font-bold", "tracking-wide", "leading-none", "truncate",
		// full palette across all shades
		"bg-red-500", "bg-slate-50", "text-rose-950", "border-emerald-300",
		"from-indigo-400", "accent-pink-600", "bg-white", "text-transparent",
		// borders, radii, effects
		"border-t-2", "rounded-tl-2xl", "divide-y", "shadow-2xl", "opacity-75",
		// interactivity, transitions, transforms, filters
		"cursor-pointer", "select-none", "transition-colors", "duration-300",
		"rotate-45", "-translate-x-1/2", "blur-sm", "backdrop-brightness-50",
		// tables and lists
		"table-fixed", "border-collapse", "list-disc",
	}
	for _, class := range expected {
		assert.Contains(t, classes, class)
	}

	// Every palette color exists in every shade for the bg family
	for _, color := range paletteColors {
		for _, shade := range paletteShades {
			assert.Contains(t, classes, "bg-"+color+"-"+shade)
		}
	}
}

func TestCandidateSet(t *testing.T) {
	set := candidateSet([]string{"b", "a", "b", "", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, set)
}

func TestCandidateSetOverCatalogIsSortedAndUnique(t *testing.T) {
	set := candidateSet(ExpandVariants(catalogClasses()))

	assert.True(t, sort.StringsAreSorted(set))
	seen := make(map[string]bool, len(set))
	for _, c := range set {
		assert.False(t, seen[c], "duplicate class %s", c)
		seen[c] = true
	}
}
