// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// Sentence and paragraph limits for dyslexia-friendly formatting.
const (
	maxSentenceWords    = 15
	conjunctionBreakAt  = 12
	sentencesPerParagrf = 3
)

// difficultWords maps words that commonly cause reading difficulty to
// simpler equivalents.
var difficultWords = map[string]string{
	"demonstrate":   "show",
	"utilize":       "use",
	"facilitate":    "help",
	"subsequently":  "then",
	"approximately": "about",
	"nevertheless":  "however",
	"furthermore":   "also",
	"consequently":  "so",
	"therefore":     "so",
	"specifically":  "exactly",
}

// pronunciationGuide carries syllable breakdowns for common academic words.
var pronunciationGuide = map[string]string{
	"methodology":   "meth-od-OL-o-gy",
	"statistical":   "sta-TIS-ti-cal",
	"significant":   "sig-NIF-i-cant",
	"hypothesis":    "hy-POTH-e-sis",
	"participants":  "par-TIC-i-pants",
	"intervention":  "in-ter-VEN-tion",
	"correlation":   "cor-re-LA-tion",
	"procedure":     "pro-CE-dure",
	"variable":      "VAIR-ee-a-bul",
	"cognitive":     "COG-ni-tive",
	"psychological": "sy-ko-LOJ-i-cal",
	"neurological":  "nur-o-LOJ-i-cal",
	"physiological": "fiz-ee-o-LOJ-i-cal",
}

// conjunctions are the preferred break points when splitting long sentences.
var conjunctions = map[string]bool{
	"and": true, "but": true, "because": true, "when": true,
	"while": true, "although": true, "however": true, "therefore": true,
}

// dyslexiaKeyTerms get uppercase emphasis for easier scanning.
var dyslexiaKeyTerms = []string{
	"results", "found", "showed", "increased", "decreased",
	"better", "worse", "significant", "important",
}

// DyslexiaModule simplifies vocabulary, shortens sentences, adds
// pronunciation guides, and spaces the text for dyslexic readers.
type DyslexiaModule struct{}

func (m *DyslexiaModule) Name() string { return "dyslexia" }

func (m *DyslexiaModule) Description() string {
	return "Simplifies vocabulary, shortens sentences, and adds pronunciation guides"
}

func (m *DyslexiaModule) Process(text string, ctx Context) (string, error) {
	simplified := simplifyVocabulary(text)
	shortened := shortenSentences(simplified)
	pronounced := addPronunciationGuides(shortened)
	formatted := formatForDyslexia(pronounced)

	var b strings.Builder
	b.WriteString(dyslexiaHeader)
	b.WriteString("\n\n")
	b.WriteString(formatted)
	b.WriteString("\n\n")
	b.WriteString(dyslexiaFooter)
	return b.String(), nil
}

func (m *DyslexiaModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	aux := types.Aux{
		VisualAids: []string{
			"Wider line spacing (1.5x) and short paragraphs",
			"Dyslexia-friendly font suggestion (OpenDyslexic or a plain sans-serif)",
			"Reading ruler overlay for line tracking",
			"Syllable breaks shown in parentheses for hard words",
		},
		ActionItems: []string{
			"Keep a word list of new vocabulary",
			"Say difficult words out loud using the syllable guides",
			"Write your own summary in five sentences or less",
			"Take a reading break every ten minutes",
		},
	}
	if ctx.Domain == types.DomainMedical {
		aux.ActionItems = append(aux.ActionItems,
			"Write each medical term next to its simple meaning")
	}
	return aux, nil
}

const dyslexiaHeader = `**Easier-reading format**

This text uses short sentences, simple words, and syllable guides for hard
words. Take your time.`

const dyslexiaFooter = `**Reading tips**

- Cover the text below the line you are reading.
- Re-read the last sentence if you lose your place.
- Sound out the syllables shown in parentheses.
- Understanding matters more than speed.`

// simplifyVocabulary replaces difficult words with simpler equivalents,
// keeping a leading capital when the original had one.
func simplifyVocabulary(text string) string {
	out := text
	for hard, simple := range difficultWords {
		out = wordBoundaryReplacer(hard).ReplaceAllStringFunc(out, func(s string) string {
			if s[0] >= 'A' && s[0] <= 'Z' {
				return strings.ToUpper(simple[:1]) + simple[1:]
			}
			return simple
		})
	}
	return out
}

// shortenSentences rebuilds the text with no sentence over maxSentenceWords
// words, preferring to break after a conjunction once a sentence has
// conjunctionBreakAt words.
func shortenSentences(text string) string {
	var out []string
	for _, sentence := range splitSentences(text) {
		words := strings.Fields(sentence)
		if len(words) <= maxSentenceWords {
			out = append(out, sentence+".")
			continue
		}
		out = append(out, breakLongSentence(words)...)
	}
	return strings.Join(out, " ")
}

// breakLongSentence splits one long sentence into several short ones.
func breakLongSentence(words []string) []string {
	var sentences []string
	var current []string
	for i, w := range words {
		current = append(current, w)
		atConjunction := len(current) >= conjunctionBreakAt &&
			conjunctions[strings.ToLower(w)] && i < len(words)-3
		if atConjunction || len(current) >= maxSentenceWords {
			sentences = append(sentences, strings.Join(current, " ")+".")
			current = current[:0]
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " ")+".")
	}
	return sentences
}

// addPronunciationGuides appends a syllable guide after each word that has
// one.
func addPronunciationGuides(text string) string {
	out := text
	for word, guide := range pronunciationGuide {
		out = wordBoundaryReplacer(word).ReplaceAllStringFunc(out, func(s string) string {
			return s + " (" + guide + ")"
		})
	}
	return out
}

// formatForDyslexia puts each sentence on its own line with a paragraph
// break every third sentence, then uppercases key scanning terms.
func formatForDyslexia(text string) string {
	var b strings.Builder
	for i, sentence := range splitSentences(text) {
		b.WriteString(sentence)
		b.WriteString(".\n")
		if (i+1)%sentencesPerParagrf == 0 {
			b.WriteString("\n")
		}
	}
	out := strings.TrimRight(b.String(), "\n")
	for _, term := range dyslexiaKeyTerms {
		out = wordBoundaryReplacer(term).ReplaceAllStringFunc(out, func(s string) string {
			return "**" + strings.ToUpper(s) + "**"
		})
	}
	return out
}
