package twindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRules(t *testing.T) {
	tests := []struct {
		name       string
		stylesheet string
		classes    []string
		expected   map[string]string
	}{
		{
			name:       "single rule per class",
			stylesheet: ".p-0{padding:0px}\n.p-1{padding:0.25rem}",
			classes:    []string{"p-0", "p-1"},
			expected: map[string]string{
				"p-0": "padding:0px\n",
				"p-1": "padding:0.25rem\n",
			},
		},
		{
			name:       "class in multiple rules accumulates bodies in order",
			stylesheet: ".a{color:red}.b,.a{display:block}",
			classes:    []string{"a", "b"},
			expected: map[string]string{
				"a": "color:red\ndisplay:block\n",
				"b": "display:block\n",
			},
		},
		{
			name:       "prefix does not match",
			stylesheet: ".abc{color:red}",
			classes:    []string{"ab"},
			expected:   map[string]string{"ab": ""},
		},
		{
			name:       "leading class of a compound selector matches",
			stylesheet: ".btn.primary{color:blue}",
			classes:    []string{"btn", "primary"},
			expected: map[string]string{
				// primary is preceded by an identifier character, not a
				// selector separator, so only btn matches
				"btn":     "color:blue\n",
				"primary": "",
			},
		},
		{
			name:       "pseudo-class suffix matches the base token",
			stylesheet: ".btn:hover{color:red}",
			classes:    []string{"btn"},
			expected:   map[string]string{"btn": "color:red\n"},
		},
		{
			name:       "descendant combinator matches",
			stylesheet: ".card .title{font-weight:700}",
			classes:    []string{"card", "title"},
			expected: map[string]string{
				"card":  "font-weight:700\n",
				"title": "font-weight:700\n",
			},
		},
		{
			name:       "regex metacharacters in class names are literal",
			stylesheet: ".w-1\\/2{width:50%}",
			classes:    []string{"w-1/2", "w-1.2"},
			expected: map[string]string{
				"w-1/2": "",
				"w-1.2": "",
			},
		},
		{
			name:       "empty stylesheet yields empty entries",
			stylesheet: "",
			classes:    []string{"p-0"},
			expected:   map[string]string{"p-0": ""},
		},
		{
			name:       "blocks without a selector half are skipped",
			stylesheet: "{color:red}.a{color:blue}trailing noise",
			classes:    []string{"a"},
			expected:   map[string]string{"a": "color:blue\n"},
		},
		{
			name:       "element selector does not match the class",
			stylesheet: "a{color:red}.a{color:blue}",
			classes:    []string{"a"},
			expected:   map[string]string{"a": "color:blue\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := ExtractRules(tt.stylesheet, tt.classes)
			assert.Equal(t, tt.expected, rules)
		})
	}
}

func TestExtractRulesCoversEveryCandidate(t *testing.T) {
	classes := []string{"p-0", "p-1", "missing"}
	rules := ExtractRules(".p-0{padding:0px}", classes)

	assert.Len(t, rules, len(classes))
	for _, class := range classes {
		_, ok := rules[class]
		assert.True(t, ok, "class %s missing from rule map", class)
	}
}
