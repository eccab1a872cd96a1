// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package accessibility implements the ordered chain of text transforms that
// adapt a translated document to a specific cognitive or sensory need. The
// module set is closed: adding a module is a compile-time change to the
// registry, not runtime discovery.
package accessibility

import (
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// Context carries shared pipeline state into every module. Modules read it;
// they never modify it.
type Context struct {
	// Domain is the subject domain the pipeline ran under.
	Domain types.Domain

	// ReadingLevel is the estimated reading level of the original text.
	ReadingLevel types.ReadingLevel

	// KeyFindings are the plain-language findings extracted so far.
	KeyFindings []string

	// SectionNames lists the structural sections found, in document order.
	SectionNames []string
}

// Module is one accessibility transform. Process rewrites the running text;
// Supplementary contributes auxiliary elements without touching the text.
type Module interface {
	// Name returns the registry name (e.g. "adhd").
	Name() string

	// Description returns a one-line summary for CLI listings.
	Description() string

	// Process returns the transformed text. An error leaves the chain's
	// text unchanged and is recorded as a warning.
	Process(text string, ctx Context) (string, error)

	// Supplementary returns the module's auxiliary elements for the
	// current text.
	Supplementary(text string, ctx Context) (types.Aux, error)
}

// sentenceEndRe splits prose into sentences on terminal punctuation runs.
var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// splitSentences returns the non-empty trimmed sentences of text. Terminal
// punctuation is dropped; callers re-add periods when reassembling.
func splitSentences(text string) []string {
	var out []string
	for _, part := range sentenceEndRe.Split(text, -1) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitParagraphs returns the non-empty trimmed paragraphs of text.
func splitParagraphs(text string) []string {
	var out []string
	for _, part := range strings.Split(text, "\n\n") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// wordBoundaryReplacer builds a case-insensitive whole-word replacement
// pattern for one phrase.
func wordBoundaryReplacer(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// containsWord reports whether text contains phrase as a whole word,
// case-insensitively.
func containsWord(text, phrase string) bool {
	return wordBoundaryReplacer(phrase).MatchString(text)
}
