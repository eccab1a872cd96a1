// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"regexp"
	"sort"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// acronyms maps research abbreviations to their expansions. Expansion happens
// on the first occurrence only; later occurrences stay short.
var acronyms = map[string]string{
	"RCT":   "randomized controlled trial",
	"ANOVA": "analysis of variance, a test comparing group averages",
	"fMRI":  "functional magnetic resonance imaging, a brain scan",
	"EEG":   "electroencephalogram, a recording of brain electrical activity",
	"CBT":   "cognitive behavioral therapy",
	"BMI":   "body mass index",
	"IQR":   "interquartile range, the middle half of the values",
	"WHO":   "World Health Organization",
	"SES":   "socioeconomic status",
}

// primerConcepts are core study concepts defined up front when they appear
// in the text.
var primerConcepts = []struct {
	term       string
	definition string
}{
	{"hypothesis", "the researchers' educated guess about what would happen"},
	{"control group", "the comparison group that did not get the treatment"},
	{"placebo", "a fake treatment used to measure expectation effects"},
	{"sample", "the group of people or things actually studied"},
	{"peer review", "other experts checking the work before publication"},
}

// BeginnerModule expands acronyms on first use and adds a short primer for
// readers new to research papers.
type BeginnerModule struct{}

func (m *BeginnerModule) Name() string { return "beginner" }

func (m *BeginnerModule) Description() string {
	return "Expands acronyms on first use and adds a primer on core study concepts"
}

func (m *BeginnerModule) Process(text string, ctx Context) (string, error) {
	expanded := expandAcronyms(text)
	primer := buildPrimer(expanded)
	if primer == "" {
		return expanded, nil
	}
	return primer + "\n\n" + expanded, nil
}

func (m *BeginnerModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	aux := types.Aux{
		ActionItems: []string{
			"Look up any remaining unfamiliar term before moving on",
			"Read the primer twice; the rest of the text builds on it",
		},
	}
	switch ctx.Domain {
	case types.DomainMedical:
		aux.ActionItems = append(aux.ActionItems,
			"A plain-language medical dictionary is a good companion for this text")
	case types.DomainPsychology:
		aux.ActionItems = append(aux.ActionItems,
			"An introductory psychology glossary covers most terms used here")
	}
	return aux, nil
}

// expandAcronyms rewrites the first occurrence of each known acronym as
// "ACRONYM (expansion)". Matching is case-sensitive: acronyms are
// conventionally written in their fixed form.
func expandAcronyms(text string) string {
	// Deterministic order so overlapping replacements are stable.
	keys := make([]string, 0, len(acronyms))
	for k := range acronyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := text
	for _, acr := range keys {
		// Case-sensitive: acronyms are conventionally written in a fixed form.
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(acr) + `\b`)
		loc := re.FindStringIndex(out)
		if loc == nil {
			continue
		}
		out = out[:loc[1]] + " (" + acronyms[acr] + ")" + out[loc[1]:]
	}
	return out
}

// buildPrimer returns a definitions block for the primer concepts that
// actually appear in the text, or "" when none do.
func buildPrimer(text string) string {
	var lines []string
	for _, c := range primerConcepts {
		if containsWord(text, c.term) {
			lines = append(lines, "- **"+c.term+"**: "+c.definition)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "**Before you start**\n\nA few terms this document uses:\n\n" + strings.Join(lines, "\n")
}
