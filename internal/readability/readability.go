// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability estimates the reading level of document text from
// sentence length and word complexity.
package readability

import (
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// sentenceSplitRe splits text into sentences on terminal punctuation runs.
var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// sampleWords caps how many words the complexity ratio samples.
const sampleWords = 1000

// longWordLen is the length above which a word counts as complex, a rough
// proxy for syllable count.
const longWordLen = 6

// Estimate returns a coarse reading-level band for the text. Empty or
// whitespace-only text is LevelUnknown. Estimate never fails.
func Estimate(text string) types.ReadingLevel {
	words := strings.Fields(text)
	if len(words) == 0 {
		return types.LevelUnknown
	}

	sentences := 0
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}
	avgSentenceLen := float64(len(words)) / float64(sentences)

	sample := words
	if len(sample) > sampleWords {
		sample = sample[:sampleWords]
	}
	complexWords := 0
	for _, w := range sample {
		if len(w) > longWordLen {
			complexWords++
		}
	}
	complexRatio := float64(complexWords) / float64(len(sample))

	switch {
	case avgSentenceLen < 15 && complexRatio < 0.10:
		return types.LevelMiddleSchool
	case avgSentenceLen < 20 && complexRatio < 0.15:
		return types.LevelHighSchool
	case avgSentenceLen < 25 && complexRatio < 0.20:
		return types.LevelCollege
	default:
		return types.LevelGraduate
	}
}
