// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// chunkWords is the target chunk size in words.
const chunkWords = 150

// tldrThreshold is the chunk word count above which a TL;DR line is added.
const tldrThreshold = 100

// keyIndicators mark sentences worth surfacing in TL;DR lines and bolding
// in the running text.
var keyIndicators = []string{
	"important", "significant", "found", "discovered", "results show",
	"concluded", "evidence", "data suggests", "study reveals",
}

// outcomeWords get emphasis because they describe what changed.
var outcomeWords = []string{
	"increased", "decreased", "improved", "reduced", "better", "worse",
}

// focusBreaks rotate between chunks so the suggestions stay varied.
var focusBreaks = []string{
	"Focus break: look away from the page for thirty seconds.",
	"Pause point: what did you just learn?",
	"Check in: still with the text? Rewind a sentence if not.",
	"Quick reset: stand up and stretch before the next part.",
}

// adhdNumberRe bolds bare numbers and percentages.
var adhdNumberRe = regexp.MustCompile(`\b\d+(?:\.\d+)?%?\b`)

// ADHDModule chunks text into short parts with progress markers, TL;DR lines,
// emphasis on key phrases and numbers, and scheduled focus breaks.
type ADHDModule struct{}

func (m *ADHDModule) Name() string { return "adhd" }

func (m *ADHDModule) Description() string {
	return "Breaks text into chunks with progress markers, TL;DR lines, and focus breaks"
}

func (m *ADHDModule) Process(text string, ctx Context) (string, error) {
	chunks := chunkBySentences(text, chunkWords)
	if len(chunks) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.WriteString(m.overview(len(chunks)))
	b.WriteString("\n\n")

	for i, chunk := range chunks {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		pct := (i + 1) * 100 / len(chunks)
		fmt.Fprintf(&b, "**Part %d of %d** (%d%% complete)\n\n", i+1, len(chunks), pct)

		highlighted := highlightKeyInfo(chunk)
		if tldr := chunkTLDR(chunk); tldr != "" {
			fmt.Fprintf(&b, "**TL;DR:** %s\n\n", tldr)
		}
		b.WriteString(highlighted)

		if i > 0 && i%3 == 0 {
			fmt.Fprintf(&b, "\n\n*%s*", focusBreaks[i%len(focusBreaks)])
		}
	}

	b.WriteString("\n\n---\n\n")
	b.WriteString(m.completion(ctx.Domain))
	return b.String(), nil
}

func (m *ADHDModule) overview(parts int) string {
	var b strings.Builder
	b.WriteString("**How this document is organized**\n\n")
	fmt.Fprintf(&b, "- Split into %d short parts, about two minutes each (roughly %d minutes total)\n", parts, parts*2)
	b.WriteString("- Key phrases and numbers are in bold\n")
	b.WriteString("- A focus break is suggested every third part\n")
	b.WriteString("- Progress markers show how far you've come")
	return b.String()
}

func (m *ADHDModule) completion(domain types.Domain) string {
	subject := string(domain)
	if subject == "" || domain == types.DomainGeneral {
		subject = "research"
	}
	return fmt.Sprintf("**Done.** You worked through a full %s paper in plain language. "+
		"Teaching one finding to someone else is the fastest way to keep it.", subject)
}

func (m *ADHDModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	aux := types.Aux{
		VisualAids: []string{
			"Progress markers at the top of each part",
			"Bold highlights on key findings and numbers",
			"TL;DR summary lines for longer parts",
		},
		ActionItems: []string{
			"Write a one-sentence summary of each part",
			"Explain one key finding to someone else",
			"Pick the single most interesting result",
		},
	}
	switch ctx.Domain {
	case types.DomainMedical:
		aux.ActionItems = append(aux.ActionItems,
			"Write down questions to ask your doctor",
			"Check whether this research affects any current treatment")
	case types.DomainPsychology:
		aux.ActionItems = append(aux.ActionItems,
			"Reflect on how these findings relate to your own experience")
	case types.DomainEducation:
		aux.ActionItems = append(aux.ActionItems,
			"Apply one insight to your own study habits")
	}
	return aux, nil
}

// chunkBySentences groups sentences into chunks of at most maxWords words.
// A single oversized sentence still becomes its own chunk.
func chunkBySentences(text string, maxWords int) []string {
	sentences := splitSentences(text)
	var chunks []string
	var current []string
	words := 0

	for _, s := range sentences {
		n := len(strings.Fields(s))
		if words+n > maxWords && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, ". ")+".")
			current = current[:0]
			words = 0
		}
		current = append(current, s)
		words += n
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, ". ")+".")
	}
	return chunks
}

// highlightKeyInfo bolds key indicator phrases, outcome words, and numbers.
func highlightKeyInfo(text string) string {
	out := text
	for _, ind := range keyIndicators {
		out = wordBoundaryReplacer(ind).ReplaceAllStringFunc(out, func(s string) string {
			return "**" + strings.ToUpper(s) + "**"
		})
	}
	for _, w := range outcomeWords {
		out = wordBoundaryReplacer(w).ReplaceAllString(out, "**$0**")
	}
	out = adhdNumberRe.ReplaceAllString(out, "**$0**")
	return out
}

// chunkTLDR returns the first key-indicator sentence of a chunk over the
// TL;DR threshold, truncated to 200 characters. Short chunks get none.
func chunkTLDR(chunk string) string {
	if len(strings.Fields(chunk)) < tldrThreshold {
		return ""
	}
	for _, s := range splitSentences(chunk) {
		lower := strings.ToLower(s)
		for _, ind := range keyIndicators {
			if strings.Contains(lower, ind) {
				if len(s) > 200 {
					return s[:200] + "..."
				}
				return s + "."
			}
		}
	}
	return ""
}
