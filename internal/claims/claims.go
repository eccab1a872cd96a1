// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claims finds statistical notation (p-values, confidence intervals,
// effect sizes, ...) in document text and rewrites each match into a
// plain-language statement.
package claims

import (
	"sort"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// Span is a half-open byte range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Result holds the outcome of one rewrite pass.
type Result struct {
	// Text is the input with every matched notation replaced by its
	// plain-language rendering.
	Text string

	// Claims lists the matches in document order, with offsets into the
	// original input.
	Claims []types.StatisticalClaim

	// Protected lists the replacement spans in Text. Later passes (the
	// jargon rewriter) must not touch these ranges.
	Protected []Span
}

// Rewrite scans text with every matcher in priority order and replaces each
// non-overlapping match with its plain rendering. A span claimed by an
// earlier matcher blocks later matchers, so notation is never translated
// twice. Unmatched statistical-looking fragments are left as-is. Sections
// attribute each claim to its enclosing section; pass nil when unknown.
// Rewrite never fails.
func Rewrite(text string, sections []types.Section) Result {
	type hit struct {
		start, end int
		kind       types.ClaimKind
		plain      string
	}
	var hits []hit
	var claimed []Span

	overlaps := func(start, end int) bool {
		for _, c := range claimed {
			if start < c.End && c.Start < end {
				return true
			}
		}
		return false
	}

	for _, m := range matchers {
		for _, idx := range m.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[0], idx[1]
			if overlaps(start, end) {
				continue
			}
			claimed = append(claimed, Span{Start: start, End: end})
			hits = append(hits, hit{
				start: start,
				end:   end,
				kind:  m.kind,
				plain: m.render(submatches(text, idx)),
			})
		}
	}

	if len(hits) == 0 {
		return Result{Text: text}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	var b strings.Builder
	b.Grow(len(text))
	result := Result{}
	last := 0
	for _, h := range hits {
		b.WriteString(text[last:h.start])
		replStart := b.Len()
		b.WriteString(h.plain)
		result.Protected = append(result.Protected, Span{Start: replStart, End: b.Len()})
		result.Claims = append(result.Claims, types.StatisticalClaim{
			Kind:     h.kind,
			Original: text[h.start:h.end],
			Plain:    h.plain,
			Section:  sectionAt(sections, h.start),
			Start:    h.start,
			End:      h.end,
		})
		last = h.end
	}
	b.WriteString(text[last:])
	result.Text = b.String()
	return result
}

// submatches converts a FindAllStringSubmatchIndex entry into submatch
// strings, with "" for groups that did not participate.
func submatches(text string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo < 0 {
			continue
		}
		out[i] = text[lo:hi]
	}
	return out
}

// sectionAt returns the name of the section containing offset, or BodyName
// when no section does.
func sectionAt(sections []types.Section, offset int) string {
	for _, s := range sections {
		if offset >= s.Start && offset < s.End {
			return s.Name
		}
	}
	return "body"
}
