// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// visualIndicators maps a visual concept to the words that signal it.
var visualIndicators = map[string][]string{
	"process":      {"method", "procedure", "steps", "process", "protocol", "workflow"},
	"comparison":   {"versus", "compared to", "difference", "contrast", "better than"},
	"relationship": {"correlation", "relationship", "connected", "associated", "linked"},
	"change":       {"increased", "decreased", "improved", "reduced", "changed"},
	"timeline":     {"before", "after", "during", "weeks", "months", "follow-up"},
}

// conceptOrder fixes the order diagrams are emitted in, since map iteration
// is unordered.
var conceptOrder = []string{"process", "comparison", "relationship", "change", "timeline"}

// domainMetaphors are concrete comparisons appended after a concept's first
// mention.
var domainMetaphors = map[types.Domain]map[string]string{
	types.DomainMedical: {
		"placebo":      "like sugar-pill medicine that still sometimes helps because you expect it to",
		"double-blind": "like both patient and doctor wearing blindfolds until the study ends",
	},
	types.DomainPsychology: {
		"correlation": "like rain and umbrellas appearing together without one causing the other",
		"sample size": "like judging all blueberries by tasting a handful",
	},
	types.DomainEducation: {
		"scaffolding":   "like construction scaffolding, removed once the building can stand",
		"metacognition": "like holding a mirror up to your own thinking",
	},
}

// percentRe picks out percentage figures for the comparison diagram.
var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent)`)

// VisualModule appends plain-ASCII diagrams for concepts detected in the
// text and annotates concepts with concrete metaphors.
type VisualModule struct{}

func (m *VisualModule) Name() string { return "visual" }

func (m *VisualModule) Description() string {
	return "Adds ASCII diagrams and concrete metaphors for visual thinkers"
}

func (m *VisualModule) Process(text string, ctx Context) (string, error) {
	annotated := addMetaphors(text, ctx.Domain)
	concepts := detectConcepts(annotated)
	diagrams := buildDiagrams(annotated, concepts)
	if diagrams == "" {
		return annotated, nil
	}
	return annotated + "\n\n" + diagrams, nil
}

func (m *VisualModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	concepts := detectConcepts(text)
	aux := types.Aux{
		ActionItems: []string{
			"Sketch your own diagram of the key concepts",
			"Map how this research connects to what you already know",
		},
	}
	for _, c := range conceptOrder {
		if !concepts[c] {
			continue
		}
		switch c {
		case "process":
			aux.VisualAids = append(aux.VisualAids, "Flowchart of the study procedure")
		case "comparison":
			aux.VisualAids = append(aux.VisualAids, "Bar chart comparing the groups or conditions")
		case "relationship":
			aux.VisualAids = append(aux.VisualAids, "Diagram linking the related measures")
		case "change":
			aux.VisualAids = append(aux.VisualAids, "Line graph of the change over the study")
		case "timeline":
			aux.VisualAids = append(aux.VisualAids, "Timeline of the study phases")
		}
	}
	return aux, nil
}

// detectConcepts reports which visual concepts the text signals.
func detectConcepts(text string) map[string]bool {
	lower := strings.ToLower(text)
	found := make(map[string]bool)
	for concept, words := range visualIndicators {
		for _, w := range words {
			if strings.Contains(lower, w) {
				found[concept] = true
				break
			}
		}
	}
	return found
}

// addMetaphors appends a parenthesized metaphor after the first occurrence
// of each concept the domain has one for.
func addMetaphors(text string, domain types.Domain) string {
	metaphors, ok := domainMetaphors[domain]
	if !ok {
		return text
	}
	out := text
	for concept, metaphor := range metaphors {
		re := wordBoundaryReplacer(concept)
		loc := re.FindStringIndex(out)
		if loc == nil {
			continue
		}
		out = out[:loc[1]] + " (" + metaphor + ")" + out[loc[1]:]
	}
	return out
}

// buildDiagrams emits one ASCII diagram block per detected concept.
func buildDiagrams(text string, concepts map[string]bool) string {
	var blocks []string
	for _, c := range conceptOrder {
		if !concepts[c] {
			continue
		}
		switch c {
		case "process":
			blocks = append(blocks, processDiagram)
		case "comparison":
			blocks = append(blocks, comparisonDiagram(text))
		case "relationship":
			blocks = append(blocks, relationshipDiagram)
		case "timeline":
			blocks = append(blocks, timelineDiagram)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return "**Visual summaries**\n\n" + strings.Join(blocks, "\n\n")
}

const processDiagram = "How the study ran:\n\n" +
	"```\n" +
	"[ Recruit ] --> [ Assign groups ] --> [ Apply treatment ] --> [ Measure ]\n" +
	"```"

// comparisonDiagram uses the first two percentages in the text when present.
func comparisonDiagram(text string) string {
	a, b := "before", "after"
	if m := percentRe.FindAllStringSubmatch(text, 2); len(m) == 2 {
		a, b = m[0][1]+"%", m[1][1]+"%"
	}
	return fmt.Sprintf("Comparison:\n\n"+
		"```\n"+
		"Group A  %-8s |########\n"+
		"Group B  %-8s |############\n"+
		"```", a, b)
}

const relationshipDiagram = "Relationship between the measures:\n\n" +
	"```\n" +
	"Measure A  <----- moves together with ----->  Measure B\n" +
	"(related does not mean one causes the other)\n" +
	"```"

const timelineDiagram = "Study timeline:\n\n" +
	"```\n" +
	"Start --> Midpoint check --> End of study --> Follow-up\n" +
	"```"
