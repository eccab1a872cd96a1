// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// listeningWPM is the speech rate used to estimate listening time.
const listeningWPM = 150

// symbolExpansions spells out notation a text-to-speech engine would mangle.
// Order matters: multi-character symbols must expand before their parts.
var symbolExpansions = []struct {
	symbol string
	spoken string
}{
	{"<=", " at most "},
	{">=", " at least "},
	{"≤", " at most "},
	{"≥", " at least "},
	{"±", " plus or minus "},
	{"%", " percent"},
	{"<", " less than "},
	{">", " greater than "},
	{"=", " equals "},
	{"&", " and "},
	{"~", " about "},
}

// markdownMarkerRe strips emphasis and heading markers that would be read
// aloud as punctuation noise.
var markdownMarkerRe = regexp.MustCompile(`[*_#]+`)

// pauseRe turns dashes and semicolons into commas, which speech engines
// render as natural pauses.
var pauseRe = regexp.MustCompile(`\s*[;—]\s*|\s+-\s+`)

// multiSpaceRe collapses the double spaces symbol expansion leaves behind.
var multiSpaceRe = regexp.MustCompile(` {2,}`)

// AudioModule prepares text for text-to-speech: symbols are spelled out,
// Markdown markers removed, pauses normalized, and chapter markers added.
type AudioModule struct{}

func (m *AudioModule) Name() string { return "audio" }

func (m *AudioModule) Description() string {
	return "Prepares text for listening: spells out symbols, removes markup, adds chapter markers"
}

func (m *AudioModule) Process(text string, ctx Context) (string, error) {
	spoken := expandSymbols(text)
	spoken = markdownMarkerRe.ReplaceAllString(spoken, "")
	spoken = pauseRe.ReplaceAllString(spoken, ", ")
	spoken = multiSpaceRe.ReplaceAllString(spoken, " ")

	paragraphs := splitParagraphs(spoken)
	if len(paragraphs) == 0 {
		return spoken, nil
	}

	words := len(strings.Fields(spoken))
	minutes := (words + listeningWPM - 1) / listeningWPM

	var b strings.Builder
	fmt.Fprintf(&b, "Listening guide. %d chapters, about %d minutes at a normal speaking pace.\n\n", len(paragraphs), minutes)
	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Chapter %d. %s", i+1, p)
	}
	b.WriteString("\n\nEnd of document.")
	return b.String(), nil
}

func (m *AudioModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		ActionItems: []string{
			"Listen at normal speed first, then re-listen to the results chapter",
			"Pause after each chapter and say the main point out loud",
		},
	}, nil
}

// expandSymbols replaces statistical and typographic symbols with spoken
// equivalents.
func expandSymbols(text string) string {
	out := text
	for _, e := range symbolExpansions {
		out = strings.ReplaceAll(out, e.symbol, e.spoken)
	}
	return out
}
