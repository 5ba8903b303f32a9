package twindex

import "strconv"

// The bundled fallback catalog covers Tailwind's documented default utility
// surface. It is a best-effort static list, not derived from the framework's
// rule generator: a project with a customized theme gets accurate names only
// through the introspection path. The tables below are compact; the full set
// is expanded in catalogClasses.

// paletteColors is the default color palette. Every color exists in all
// shades of paletteShades.
var paletteColors = []string{
	"slate", "gray", "zinc", "neutral", "stone",
	"red", "orange", "amber", "yellow", "lime",
	"green", "emerald", "teal", "cyan", "sky",
	"blue", "indigo", "violet", "purple", "fuchsia",
	"pink", "rose",
}

var paletteShades = []string{
	"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950",
}

// singletonColors have no shades.
var singletonColors = []string{"inherit", "current", "transparent", "black", "white"}

// colorPrefixes are the utility families generated for every palette entry.
var colorPrefixes = []string{
	"bg", "text", "border", "divide", "ring", "ring-offset",
	"from", "via", "to", "accent", "caret", "decoration",
	"outline", "shadow", "fill", "stroke", "placeholder",
}

var sizeFractions = []string{
	"1/2", "1/3", "2/3", "1/4", "2/4", "3/4",
	"1/5", "2/5", "3/5", "4/5", "1/6", "2/6", "5/6",
	"1/12", "2/12", "3/12", "4/12", "5/12", "6/12",
	"7/12", "8/12", "9/12", "10/12", "11/12",
}

var breakpoints = []string{"sm", "md", "lg", "xl", "2xl"}

// catalogClasses expands the static catalog into the full candidate list.
// The result may contain duplicates; callers dedupe.
func catalogClasses() []string {
	var names []string

	add := func(ns ...string) {
		names = append(names, ns...)
	}
	// one utility per suffix, prefix-joined with "-"
	family := func(prefix string, suffixes ...string) {
		for _, s := range suffixes {
			add(prefix + "-" + s)
		}
	}
	// numeric range [from, to] by step
	numeric := func(prefix string, from, to, step int) {
		for i := from; i <= to; i += step {
			add(prefix + "-" + strconv.Itoa(i))
		}
	}
	spacing := func(prefix string) {
		family(prefix, spacingScale...)
	}

	// Layout: display, position, visibility, box model.
	add(
		"block", "inline-block", "inline", "flex", "inline-flex",
		"table", "inline-table", "table-caption", "table-cell", "table-row",
		"table-column", "table-column-group", "table-footer-group",
		"table-header-group", "table-row-group",
		"grid", "inline-grid", "contents", "list-item", "hidden", "flow-root",
	)
	add("static", "fixed", "absolute", "relative", "sticky")
	add("visible", "invisible", "collapse")
	add("container", "box-border", "box-content")
	add("isolate", "isolation-auto")
	family("float", "left", "right", "none")
	family("clear", "left", "right", "both", "none")
	family("z", "0", "10", "20", "30", "40", "50", "auto")
	for _, p := range []string{"inset", "inset-x", "inset-y", "top", "right", "bottom", "left"} {
		spacing(p)
		family(p, "auto", "full", "1/2", "1/3", "2/3", "1/4", "3/4")
	}
	family("object", "contain", "cover", "fill", "none", "scale-down",
		"bottom", "center", "left", "left-bottom", "left-top",
		"right", "right-bottom", "right-top", "top")
	for _, p := range []string{"overflow", "overflow-x", "overflow-y"} {
		family(p, "auto", "hidden", "clip", "visible", "scroll")
	}
	for _, p := range []string{"overscroll", "overscroll-x", "overscroll-y"} {
		family(p, "auto", "contain", "none")
	}
	family("aspect", "auto", "square", "video")
	family("columns", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "auto")
	family("break-after", "auto", "avoid", "all", "page", "column")
	family("break-before", "auto", "avoid", "all", "page", "column")
	family("break-inside", "auto", "avoid", "avoid-page", "avoid-column")

	// Flexbox and grid.
	add(flexVariants...)
	family("basis", "auto", "full")
	spacing("basis")
	family("order", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
		"first", "last", "none")
	family("grid-cols", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "none")
	family("grid-rows", "1", "2", "3", "4", "5", "6", "none")
	family("col-span", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "full")
	family("row-span", "1", "2", "3", "4", "5", "6", "full")
	numeric("col-start", 1, 13, 1)
	add("col-start-auto", "col-end-auto", "col-auto", "row-auto")
	numeric("col-end", 1, 13, 1)
	numeric("row-start", 1, 7, 1)
	numeric("row-end", 1, 7, 1)
	add("row-start-auto", "row-end-auto")
	family("grid-flow", "row", "col", "dense", "row-dense", "col-dense")
	family("auto-cols", "auto", "min", "max", "fr")
	family("auto-rows", "auto", "min", "max", "fr")
	for _, p := range []string{"gap", "gap-x", "gap-y", "space-x", "space-y"} {
		spacing(p)
	}
	add("space-x-reverse", "space-y-reverse")
	family("justify", "normal", "start", "end", "center", "between", "around", "evenly", "stretch")
	family("justify-items", "start", "end", "center", "stretch")
	family("justify-self", "auto", "start", "end", "center", "stretch")
	family("content", "normal", "center", "start", "end", "between", "around", "evenly",
		"baseline", "stretch")
	family("items", "start", "end", "center", "baseline", "stretch")
	family("self", "auto", "start", "end", "center", "stretch", "baseline")
	family("place-content", "center", "start", "end", "between", "around", "evenly",
		"baseline", "stretch")
	family("place-items", "start", "end", "center", "baseline", "stretch")
	family("place-self", "auto", "start", "end", "center", "stretch")

	// Spacing. The expander guarantees p/m; the catalog also carries the
	// x/y axis variants and negative margins.
	for _, p := range []string{"px", "py", "mx", "my"} {
		spacing(p)
	}
	for _, side := range []string{"", "t", "r", "b", "l", "x", "y"} {
		spacing("-m" + side)
		add("m" + side + "-auto")
	}

	// Sizing.
	for _, p := range []string{"w", "h"} {
		spacing(p)
		family(p, "auto", "full", "screen", "min", "max", "fit")
		family(p, sizeFractions...)
	}
	family("min-w", "0", "full", "min", "max", "fit")
	family("max-w", "0", "none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl",
		"5xl", "6xl", "7xl", "full", "min", "max", "fit", "prose")
	for _, bp := range breakpoints {
		add("max-w-screen-" + bp)
	}
	family("min-h", "0", "full", "screen", "min", "max", "fit")
	spacing("max-h")
	family("max-h", "full", "screen", "min", "max", "fit", "none")

	// Typography.
	family("font", "sans", "serif", "mono")
	family("text", "xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl",
		"6xl", "7xl", "8xl", "9xl")
	family("font", "thin", "extralight", "light", "normal", "medium",
		"semibold", "bold", "extrabold", "black")
	add("italic", "not-italic", "antialiased", "subpixel-antialiased")
	family("tracking", "tighter", "tight", "normal", "wide", "wider", "widest")
	family("leading", "3", "4", "5", "6", "7", "8", "9", "10",
		"none", "tight", "snug", "normal", "relaxed", "loose")
	family("list", "none", "disc", "decimal", "inside", "outside")
	family("text", "left", "center", "right", "justify", "start", "end")
	add("underline", "overline", "line-through", "no-underline")
	family("decoration", "solid", "double", "dotted", "dashed", "wavy",
		"auto", "from-font", "0", "1", "2", "4", "8")
	family("underline-offset", "auto", "0", "1", "2", "4", "8")
	add("uppercase", "lowercase", "capitalize", "normal-case")
	add("truncate", "text-ellipsis", "text-clip")
	family("indent", spacingScale...)
	family("align", "baseline", "top", "middle", "bottom", "text-top",
		"text-bottom", "sub", "super")
	family("whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces")
	family("break", "normal", "words", "all", "keep")
	family("hyphens", "none", "manual", "auto")
	family("content", "none")

	// Colors: every prefix against the full default palette plus the
	// unshaded singletons.
	for _, prefix := range colorPrefixes {
		for _, color := range paletteColors {
			for _, shade := range paletteShades {
				add(prefix + "-" + color + "-" + shade)
			}
		}
		family(prefix, singletonColors...)
	}
	add("bg-none")
	for _, dir := range []string{"t", "tr", "r", "br", "b", "bl", "l", "tl"} {
		add("bg-gradient-to-" + dir)
	}
	family("bg", "auto", "cover", "contain", "fixed", "local", "scroll",
		"clip-border", "clip-padding", "clip-content", "clip-text",
		"bottom", "center", "left", "left-bottom", "left-top",
		"right", "right-bottom", "right-top", "top",
		"repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space",
		"origin-border", "origin-padding", "origin-content", "blend-normal",
		"blend-multiply", "blend-screen", "blend-overlay")

	// Borders and radii.
	add("border", "rounded")
	family("border", "0", "2", "4", "8")
	for _, side := range []string{"x", "y", "t", "r", "b", "l"} {
		add("border-" + side)
		family("border-"+side, "0", "2", "4", "8")
	}
	family("border", "solid", "dashed", "dotted", "double", "hidden", "none")
	for _, size := range []string{"none", "sm", "md", "lg", "xl", "2xl", "3xl", "full"} {
		add("rounded-" + size)
		for _, side := range []string{"t", "r", "b", "l", "tl", "tr", "br", "bl"} {
			add("rounded-" + side + "-" + size)
		}
	}
	for _, side := range []string{"t", "r", "b", "l", "tl", "tr", "br", "bl"} {
		add("rounded-" + side)
	}
	add("divide-x", "divide-y", "divide-x-reverse", "divide-y-reverse")
	family("divide-x", "0", "2", "4", "8")
	family("divide-y", "0", "2", "4", "8")
	family("divide", "solid", "dashed", "dotted", "double", "none")
	family("outline", "none", "0", "1", "2", "4", "8", "dashed", "dotted", "double")
	add("outline")
	family("outline-offset", "0", "1", "2", "4", "8")
	family("ring", "0", "1", "2", "4", "8", "inset")
	add("ring")
	family("ring-offset", "0", "1", "2", "4", "8")

	// Effects.
	family("shadow", "sm", "md", "lg", "xl", "2xl", "inner", "none")
	add("shadow")
	numeric("opacity", 0, 100, 5)
	for _, p := range []string{"mix-blend", "bg-blend"} {
		family(p, "normal", "multiply", "screen", "overlay", "darken", "lighten",
			"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
			"exclusion", "hue", "saturation", "color", "luminosity")
	}

	// Filters.
	family("blur", "none", "sm", "md", "lg", "xl", "2xl", "3xl")
	add("blur")
	numeric("brightness", 0, 200, 25)
	add("brightness-90", "brightness-95", "brightness-105", "brightness-110")
	numeric("contrast", 0, 200, 25)
	family("drop-shadow", "sm", "md", "lg", "xl", "2xl", "none")
	add("drop-shadow", "grayscale", "grayscale-0", "invert", "invert-0",
		"sepia", "sepia-0")
	family("hue-rotate", "0", "15", "30", "60", "90", "180")
	family("saturate", "0", "50", "100", "150", "200")
	for _, p := range []string{"backdrop-blur", "backdrop-grayscale", "backdrop-invert", "backdrop-sepia"} {
		add(p)
	}
	family("backdrop-blur", "none", "sm", "md", "lg", "xl", "2xl", "3xl")
	numeric("backdrop-brightness", 0, 200, 25)
	numeric("backdrop-contrast", 0, 200, 25)
	numeric("backdrop-opacity", 0, 100, 5)
	family("backdrop-saturate", "0", "50", "100", "150", "200")
	family("backdrop-hue-rotate", "0", "15", "30", "60", "90", "180")

	// Tables.
	add("table-auto", "table-fixed", "border-collapse", "border-separate",
		"caption-top", "caption-bottom")
	for _, p := range []string{"border-spacing", "border-spacing-x", "border-spacing-y"} {
		spacing(p)
	}

	// Transitions and animation.
	add("transition", "transition-none", "transition-all", "transition-colors",
		"transition-opacity", "transition-shadow", "transition-transform")
	family("duration", "0", "75", "100", "150", "200", "300", "500", "700", "1000")
	family("ease", "linear", "in", "out", "in-out")
	family("delay", "0", "75", "100", "150", "200", "300", "500", "700", "1000")
	family("animate", "none", "spin", "ping", "pulse", "bounce")

	// Transforms.
	family("scale", "0", "50", "75", "90", "95", "100", "105", "110", "125", "150")
	for _, axis := range []string{"x", "y"} {
		family("scale-"+axis, "0", "50", "75", "90", "95", "100", "105", "110", "125", "150")
	}
	family("rotate", "0", "1", "2", "3", "6", "12", "45", "90", "180")
	for _, axis := range []string{"x", "y"} {
		spacing("translate-" + axis)
		spacing("-translate-" + axis)
		family("translate-"+axis, "1/2", "1/3", "2/3", "1/4", "3/4", "full")
		family("-translate-"+axis, "1/2", "1/3", "2/3", "1/4", "3/4", "full")
	}
	family("skew-x", "0", "1", "2", "3", "6", "12")
	family("skew-y", "0", "1", "2", "3", "6", "12")
	family("origin", "center", "top", "top-right", "right", "bottom-right",
		"bottom", "bottom-left", "left", "top-left")
	add("transform", "transform-gpu", "transform-none")

	// Interactivity.
	family("cursor", "auto", "default", "pointer", "wait", "text", "move", "help",
		"not-allowed", "none", "context-menu", "progress", "cell", "crosshair",
		"vertical-text", "alias", "copy", "no-drop", "grab", "grabbing",
		"all-scroll", "col-resize", "row-resize", "n-resize", "e-resize",
		"s-resize", "w-resize", "zoom-in", "zoom-out")
	family("select", "none", "text", "all", "auto")
	family("resize", "none", "x", "y")
	add("resize")
	family("pointer-events", "none", "auto")
	add("appearance-none")
	family("scroll", "auto", "smooth")
	for _, side := range []string{"", "x", "y", "t", "r", "b", "l"} {
		spacing("scroll-m" + side)
		spacing("scroll-p" + side)
	}
	family("snap", "start", "end", "center", "align-none", "normal", "always",
		"none", "x", "y", "both", "mandatory", "proximity")
	family("touch", "auto", "none", "pan-x", "pan-left", "pan-right",
		"pan-y", "pan-up", "pan-down", "pinch-zoom", "manipulation")
	family("will-change", "auto", "scroll", "contents", "transform")
	add("sr-only", "not-sr-only")

	return names
}
