// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"sort"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// phrasalReplacements maps phrasal verbs and formal idioms to the direct
// forms that are easier for non-native readers.
var phrasalReplacements = map[string]string{
	"carry out":               "do",
	"carried out":             "did",
	"prior to":                "before",
	"subsequent to":           "after",
	"in order to":             "to",
	"due to the fact that":    "because",
	"a number of":             "several",
	"take into account":       "consider",
	"took into account":       "considered",
	"with respect to":         "about",
	"in the event that":       "if",
	"give rise to":            "cause",
	"gave rise to":            "caused",
	"in light of":             "considering",
	"as a consequence":        "as a result",
	"it should be noted that": "note that",
}

// ESLModule replaces phrasal verbs and formal idioms with direct equivalents
// and appends a vocabulary list of every replacement made.
type ESLModule struct{}

func (m *ESLModule) Name() string { return "esl" }

func (m *ESLModule) Description() string {
	return "Replaces phrasal verbs and formal idioms with direct equivalents for non-native readers"
}

func (m *ESLModule) Process(text string, ctx Context) (string, error) {
	out, replaced := replacePhrasals(text)
	if len(replaced) == 0 {
		return out, nil
	}
	var b strings.Builder
	b.WriteString(out)
	b.WriteString("\n\n**Vocabulary**\n\nAcademic phrases replaced in this text:\n\n")
	for _, pair := range replaced {
		b.WriteString("- " + pair + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (m *ESLModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		ActionItems: []string{
			"Review the vocabulary list; the original phrases are common in academic writing",
			"Note any replacement you want to learn in its formal form",
		},
	}, nil
}

// replacePhrasals substitutes every known phrase and returns the rewritten
// text plus "phrase -> replacement" entries for the phrases found, in
// alphabetical order.
func replacePhrasals(text string) (string, []string) {
	keys := make([]string, 0, len(phrasalReplacements))
	for k := range phrasalReplacements {
		keys = append(keys, k)
	}
	// Longer phrases first so "due to the fact that" is not clipped by a
	// shorter overlapping entry.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := text
	var replaced []string
	for _, phrase := range keys {
		direct := phrasalReplacements[phrase]
		re := wordBoundaryReplacer(phrase)
		if !re.MatchString(out) {
			continue
		}
		out = re.ReplaceAllStringFunc(out, func(s string) string {
			if s[0] >= 'A' && s[0] <= 'Z' {
				return strings.ToUpper(direct[:1]) + direct[1:]
			}
			return direct
		})
		replaced = append(replaced, phrase+" -> "+direct)
	}
	sort.Strings(replaced)
	return out, replaced
}
