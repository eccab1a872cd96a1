// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jargon

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/plainread/plainread/internal/claims"
	"github.com/plainread/plainread/pkg/types"
)

// Rewriter applies one domain's candidate substitution set to text. Build it
// once per translation with NewRewriter.
type Rewriter struct {
	re     *regexp.Regexp
	lookup map[string]Term
}

// NewRewriter compiles the candidate set for a domain into a single scanner.
// Candidates are ordered longest-first in the alternation; the regexp engine
// prefers the earliest alternative at each position, so a longer term always
// beats a shorter one starting at the same offset ("confidence interval"
// before "confidence").
func NewRewriter(dict *Dictionary, domain types.Domain) *Rewriter {
	candidates := dict.Candidates(domain)
	if len(candidates) == 0 {
		return &Rewriter{}
	}
	parts := make([]string, len(candidates))
	lookup := make(map[string]Term, len(candidates))
	for i, t := range candidates {
		parts[i] = regexp.QuoteMeta(t.Term)
		lookup[t.Term] = t
	}
	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, "|") + `)\b`)
	return &Rewriter{re: re, lookup: lookup}
}

// Apply replaces every whole-word, case-insensitive occurrence of a candidate
// term with its plain-language explanation, preserving the capitalization of
// the first letter. Matches inside protected spans (statistical claims
// already rewritten) are left untouched. Matches are located up front, so
// replacement text is never rescanned: applying the rewriter to its own
// term-free output is a no-op.
func (r *Rewriter) Apply(text string, protected []claims.Span) (string, []types.TermSubstitution) {
	if r.re == nil || text == "" {
		return text, nil
	}
	matches := r.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	counts := make(map[string]int)
	var order []string
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if overlapsProtected(protected, start, end) {
			continue
		}
		matched := text[start:end]
		entry, ok := r.lookup[strings.ToLower(matched)]
		if !ok {
			continue
		}
		b.WriteString(text[last:start])
		repl := entry.Replacement
		if beginsUpper(matched) {
			repl = upperFirst(repl)
		}
		b.WriteString(repl)
		if counts[entry.Term] == 0 {
			order = append(order, entry.Term)
		}
		counts[entry.Term]++
		last = end
	}
	if len(order) == 0 {
		return text, nil
	}
	b.WriteString(text[last:])

	subs := make([]types.TermSubstitution, 0, len(order))
	for _, term := range order {
		entry := r.lookup[term]
		subs = append(subs, types.TermSubstitution{
			Term:        entry.Term,
			Domain:      entry.Domain,
			Replacement: entry.Replacement,
			Count:       counts[term],
		})
	}
	return b.String(), subs
}

func overlapsProtected(spans []claims.Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && s.Start < end {
			return true
		}
	}
	return false
}

func beginsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
