package twindex

import (
	"regexp"
	"strings"
)

// ExtractRules recovers, per candidate class, the declaration bodies the
// compiled stylesheet generated for it. This is deliberate selector
// matching, not CSS parsing: the stylesheet is split on braces into
// selector/body blocks and each class is matched against the raw selector
// text. A class inside a media query or carrying a pseudo-selector suffix
// still matches as long as the bare class token appears in selector
// position. Every class in classes gets exactly one entry, possibly empty;
// bodies from multiple matching blocks accumulate in file order, each
// followed by a newline.
func ExtractRules(stylesheet string, classes []string) map[string]string {
	rules := make(map[string]string, len(classes))
	for _, class := range classes {
		rules[class] = ""
	}
	if stylesheet == "" {
		return rules
	}

	type block struct {
		selector string
		body     string
	}
	var blocks []block
	for _, chunk := range strings.Split(stylesheet, "}") {
		selector, body, found := strings.Cut(chunk, "{")
		// no brace or nothing before it: trailing noise, at-rule
		// preamble, or the stylesheet's own leading content
		if !found || strings.TrimSpace(selector) == "" {
			continue
		}
		blocks = append(blocks, block{selector: selector, body: body})
	}

	for _, class := range classes {
		// The class must appear as a bare class selector: a dot preceded
		// by start of string, comma, or whitespace, and followed by a
		// selector-chaining character or end of string. Permissive on
		// purpose: compound selectors, combinators, and comma groups all
		// match.
		pattern := regexp.MustCompile(`(^|[\s,])\.` + regexp.QuoteMeta(class) + `($|[,{\s.:#\[])`)
		for _, b := range blocks {
			if pattern.MatchString(b.selector) {
				rules[class] += b.body + "\n"
			}
		}
	}

	return rules
}
