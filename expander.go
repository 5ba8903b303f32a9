package twindex

// spacingScale is the fixed numeric scale used for the guaranteed
// padding/margin utilities. It mirrors Tailwind's default spacing scale.
var spacingScale = []string{
	"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5",
	"4", "5", "6", "7", "8", "9", "10", "11", "12",
	"14", "16", "20", "24", "28", "32", "36", "40", "44", "48",
	"52", "56", "60", "64", "72", "80", "96", "px",
}

// flexVariants are always present in the expanded set, whatever the
// enumeration source reported.
var flexVariants = []string{
	"flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse",
	"flex-wrap", "flex-wrap-reverse", "flex-nowrap",
	"flex-1", "flex-auto", "flex-initial", "flex-none",
	"grow", "grow-0", "shrink", "shrink-0",
}

// ExpandVariants returns a superset of classes guaranteed to contain the
// fixed spacing utilities (padding and margin, all sides and the four
// directional sides, over the default numeric scale) and the fixed flex
// direction/wrap/grow/shrink utilities. Pure set union: the input order is
// preserved, duplicates are not introduced, and applying it twice yields
// the same result as once.
func ExpandVariants(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for _, property := range []string{"p", "m"} {
		for _, side := range []string{"", "t", "r", "b", "l"} {
			for _, step := range spacingScale {
				add(property + side + "-" + step)
			}
		}
	}
	for _, c := range flexVariants {
		add(c)
	}

	return out
}
