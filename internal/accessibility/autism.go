// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"fmt"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// idioms maps figurative phrases to literal equivalents. Figurative language
// is a common barrier for autistic readers.
var idioms = map[string]string{
	"shed light on":          "explain",
	"sheds light on":         "explains",
	"paves the way for":      "prepares for",
	"pave the way for":       "prepare for",
	"in a nutshell":          "in summary",
	"at the end of the day":  "ultimately",
	"on the other hand":      "alternatively",
	"rule of thumb":          "general guideline",
	"the big picture":        "the overall situation",
	"a double-edged sword":   "something with both benefits and drawbacks",
	"food for thought":       "something worth considering",
	"the tip of the iceberg": "a small visible part of a larger issue",
}

// AutismModule replaces figurative language with literal equivalents and adds
// an explicit structure outline so the reading order is predictable.
type AutismModule struct{}

func (m *AutismModule) Name() string { return "autism" }

func (m *AutismModule) Description() string {
	return "Replaces figurative language with literal phrasing and adds a predictable structure outline"
}

func (m *AutismModule) Process(text string, ctx Context) (string, error) {
	literal := replaceIdioms(text)
	paragraphs := splitParagraphs(literal)
	if len(paragraphs) == 0 {
		return literal, nil
	}

	var b strings.Builder
	b.WriteString("**What to expect**\n\n")
	fmt.Fprintf(&b, "This document has %d parts. Read them in order; each part is labeled. ", len(paragraphs))
	b.WriteString("There are no surprises: every part is plain description.\n\n")

	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**Part %d of %d.**\n\n%s", i+1, len(paragraphs), p)
	}
	b.WriteString("\n\n**End of document.**")
	return b.String(), nil
}

func (m *AutismModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		VisualAids: []string{
			"Numbered part labels making the reading order explicit",
			"A structure outline before the content",
		},
		ActionItems: []string{
			"Read the parts in the numbered order",
			"Note any sentence that still seems ambiguous and look up its terms",
		},
	}, nil
}

// replaceIdioms substitutes literal phrasing for known figurative phrases.
func replaceIdioms(text string) string {
	out := text
	for idiom, literal := range idioms {
		out = wordBoundaryReplacer(idiom).ReplaceAllStringFunc(out, func(s string) string {
			if s[0] >= 'A' && s[0] <= 'Z' {
				return strings.ToUpper(literal[:1]) + literal[1:]
			}
			return literal
		})
	}
	return out
}
