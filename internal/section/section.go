// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package section locates conventional academic section boundaries (abstract,
// methods, results, ...) in raw document text.
package section

import (
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// BodyName is the section name used when no headings are recognized.
const BodyName = "body"

// maxHeadingLen caps how long a line can be and still count as a heading.
// Prose sentences that happen to start with a section word stay prose.
const maxHeadingLen = 80

// headingNumberRe strips leading numbering like "2.", "2)", "2.1", or "IV."
// from a candidate heading line.
var headingNumberRe = regexp.MustCompile(`^(?:\d+(?:\.\d+)*[.)]?|[IVXLC]+[.)])\s+`)

// sectionAliases folds recognized heading names into canonical section names.
var sectionAliases = map[string]string{
	"abstract":              "abstract",
	"summary":               "abstract",
	"introduction":          "introduction",
	"background":            "background",
	"method":                "methods",
	"methods":               "methods",
	"methodology":           "methods",
	"materials and methods": "methods",
	"results":               "results",
	"findings":              "results",
	"discussion":            "discussion",
	"general discussion":    "discussion",
	"conclusion":            "conclusion",
	"conclusions":           "conclusion",
	"limitations":           "limitations",
	"references":            "references",
	"bibliography":          "references",
}

// Canonical lists the canonical section names in conventional paper order.
var Canonical = []string{
	"abstract", "introduction", "background", "methods",
	"results", "discussion", "conclusion", "limitations", "references",
}

// Extract scans text line by line for recognized section headings and returns
// the named spans. Each span starts at the first byte after its heading line
// and ends at the start of the next heading line (or end of text). When no
// headings are found the whole text becomes a single "body" section. Extract
// never fails.
func Extract(text string) []types.Section {
	type heading struct {
		name         string
		lineStart    int
		contentStart int
	}
	var heads []heading

	offset := 0
	for offset <= len(text) {
		lineEnd := len(text)
		next := len(text) + 1 // past the end, terminates the loop
		if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
			lineEnd = offset + nl
			next = lineEnd + 1
		}
		if name, ok := headingName(text[offset:lineEnd]); ok {
			contentStart := lineEnd
			if contentStart < len(text) {
				contentStart++ // skip the newline
			}
			heads = append(heads, heading{name: name, lineStart: offset, contentStart: contentStart})
		}
		offset = next
	}

	if len(heads) == 0 {
		return []types.Section{{Name: BodyName, Start: 0, End: len(text)}}
	}

	var sections []types.Section
	// Preamble before the first heading is kept as a body section.
	if heads[0].lineStart > 0 && strings.TrimSpace(text[:heads[0].lineStart]) != "" {
		sections = append(sections, types.Section{Name: BodyName, Start: 0, End: heads[0].lineStart})
	}
	for i, h := range heads {
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1].lineStart
		}
		sections = append(sections, types.Section{Name: h.name, Start: h.contentStart, End: end})
	}
	return sections
}

// headingName reports whether a line is a recognized section heading and
// returns its canonical name. Recognized forms: "Methods", "2. Methods",
// "IV. Discussion", "## Results", "RESULTS:".
func headingName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLen {
		return "", false
	}
	trimmed = stripMarkdownPrefix(trimmed)
	trimmed = headingNumberRe.ReplaceAllString(trimmed, "")
	trimmed = strings.TrimSuffix(trimmed, ":")
	key := strings.Join(strings.Fields(strings.ToLower(trimmed)), " ")
	name, ok := sectionAliases[key]
	return name, ok
}

// stripMarkdownPrefix removes a leading run of '#' characters and the space
// after them.
func stripMarkdownPrefix(line string) string {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i == 0 {
		return line
	}
	return strings.TrimSpace(line[i:])
}

// Find returns the first section with the given canonical name.
func Find(sections []types.Section, name string) (types.Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return types.Section{}, false
}

// Names returns the section names in document order, without duplicates.
func Names(sections []types.Section) []string {
	var names []string
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		names = append(names, s.Name)
	}
	return names
}
