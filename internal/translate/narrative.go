// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"regexp"
	"strings"

	"github.com/plainread/plainread/internal/section"
	"github.com/plainread/plainread/pkg/types"
)

// Caps on the narrative lists.
const (
	maxFindings    = 8
	maxMethodology = 6
	maxMatters     = 6
	maxQuestions   = 6
)

// Confidence weighting. Sections carry the most signal: a paper with
// recognizable structure is a paper the pipeline understood.
const (
	sectionWeight = 0.40
	claimWeight   = 0.35
	jargonWeight  = 0.25

	// Denominators: the four canonical sections, and the match counts at
	// which the claim and jargon signals saturate.
	sectionDenom = 4
	claimDenom   = 4
	jargonDenom  = 8
)

// confidenceSections are the canonical sections counted toward the
// structure signal.
var confidenceSections = []string{"abstract", "methods", "results", "discussion"}

// findingRe matches sentences that state results or conclusions.
var findingRe = regexp.MustCompile(`(?i)\b(?:we found|results? (?:show|showed|indicate|suggest)|findings? (?:show|suggest|indicate)|the study found|concluded? that|significant(?:ly)? (?:difference|effect|improvement|reduction|increase|decrease))\b`)

// methodRe matches sentences that describe how the study was done.
var methodRe = regexp.MustCompile(`(?i)\b(?:participants?|subjects? were|sample (?:of|size|consisted)|randomly assigned|recruited|procedure|data (?:were|was) collected|measured using)\b`)

// implicationRe matches sentences that spell out why the work matters.
var implicationRe = regexp.MustCompile(`(?i)\b(?:implications?|these findings suggest|our results suggest|this study (?:suggests|shows|demonstrates)|could (?:lead to|improve|help)|clinical practice|policy)\b`)

// mattersTemplates gives each domain its default why-this-matters lines.
var mattersTemplates = map[types.Domain][]string{
	types.DomainMedical: {
		"Could lead to better treatments for patients",
		"May change how doctors diagnose or treat conditions",
		"Might reveal new risks or benefits of treatments",
	},
	types.DomainPsychology: {
		"Helps us understand how the mind works",
		"Could improve relationships and social interactions",
		"Provides insight into human behavior and decision-making",
	},
	types.DomainEducation: {
		"Could improve how students learn",
		"May help teachers be more effective",
		"Might boost academic achievement",
	},
	types.DomainSocialScience: {
		"Helps explain how communities and societies work",
		"Could inform public policy decisions",
	},
	types.DomainScience: {
		"Advances basic understanding in its field",
		"May enable future applications we cannot predict yet",
	},
	types.DomainGeneral: {
		"Adds a piece to what researchers know about this topic",
	},
}

// defaultQuestions gives each domain its default questions-to-ask.
var defaultQuestions = map[types.Domain][]string{
	types.DomainMedical: {
		"Does this research apply to my specific condition?",
		"Should I change anything based on this single study?",
		"What are the risks and benefits for someone like me?",
	},
	types.DomainPsychology: {
		"How might this apply to my situation?",
		"Could this help me understand my behavior better?",
	},
	types.DomainEducation: {
		"How could this improve learning in practice?",
		"Should study or teaching methods change based on this?",
	},
	types.DomainSocialScience: {
		"Does this finding hold for communities like mine?",
		"What policy change, if any, does this support?",
	},
	types.DomainScience: {
		"Has this result been replicated by other groups?",
		"What would have to be true for this to matter in practice?",
	},
	types.DomainGeneral: {
		"Who funded and reviewed this research?",
		"Has anyone replicated this result?",
	},
}

// keyFindings collects finding-pattern sentences from the results,
// conclusion, and body sections, then tops up with claim translations.
// Deduplicated, capped at maxFindings.
func keyFindings(text string, sections []types.Section, matched []types.StatisticalClaim) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] || len(out) >= maxFindings {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, name := range []string{"results", "conclusion", "body", "discussion", "abstract"} {
		sec, ok := section.Find(sections, name)
		if !ok {
			continue
		}
		for _, sentence := range sentencesOf(sec.Slice(text)) {
			if findingRe.MatchString(sentence) {
				add(sentence + ".")
			}
		}
	}

	// Claim translations from the results (or body) section rank as
	// findings too: they are the quantitative core of the paper.
	for _, c := range matched {
		if c.Section == "results" || c.Section == "body" {
			add("The numbers say: " + c.Plain + ".")
		}
	}
	return out
}

// methodologyNotes collects method-pattern sentences from the methods and
// body sections, capped at maxMethodology.
func methodologyNotes(text string, sections []types.Section) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range []string{"methods", "body"} {
		sec, ok := section.Find(sections, name)
		if !ok {
			continue
		}
		for _, sentence := range sentencesOf(sec.Slice(text)) {
			if !methodRe.MatchString(sentence) {
				continue
			}
			key := strings.ToLower(sentence)
			if seen[key] || len(out) >= maxMethodology {
				continue
			}
			seen[key] = true
			out = append(out, sentence+".")
		}
	}
	return out
}

// whyItMatters merges the domain template with implication sentences found
// in the text, capped at maxMatters.
func whyItMatters(text string, domain types.Domain) []string {
	out := append([]string(nil), mattersTemplates[domain]...)
	for _, sentence := range sentencesOf(text) {
		if len(out) >= maxMatters {
			break
		}
		if implicationRe.MatchString(sentence) && len(sentence) > 20 {
			out = append(out, sentence+".")
		}
	}
	if len(out) > maxMatters {
		out = out[:maxMatters]
	}
	return out
}

// questionsToAsk merges module-supplied questions (first, in chain order)
// with the domain defaults, deduplicated and capped at maxQuestions.
func questionsToAsk(domain types.Domain, outputs []types.ModuleOutput) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(q string) {
		key := strings.ToLower(strings.TrimSpace(q))
		if key == "" || seen[key] || len(out) >= maxQuestions {
			return
		}
		seen[key] = true
		out = append(out, q)
	}
	for _, mo := range outputs {
		for _, q := range mo.Aux.Questions {
			add(q)
		}
	}
	for _, q := range defaultQuestions[domain] {
		add(q)
	}
	return out
}

// confidence scores how much structural and statistical signal the pipeline
// found, in [0,1]. It is a fixed weighted sum, not a learned metric: the
// same input always scores the same.
func confidence(sections []types.Section, matched []types.StatisticalClaim, subs []types.TermSubstitution) float64 {
	found := 0
	for _, name := range confidenceSections {
		if _, ok := section.Find(sections, name); ok {
			found++
		}
	}

	sectionScore := float64(found) / sectionDenom
	claimScore := ratio(len(matched), claimDenom)
	jargonScore := ratio(len(subs), jargonDenom)

	score := sectionWeight*sectionScore + claimWeight*claimScore + jargonWeight*jargonScore
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func ratio(n, denom int) float64 {
	if n >= denom {
		return 1
	}
	return float64(n) / float64(denom)
}

// sentenceSplitRe splits narrative text into sentences.
var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// sentencesOf returns the non-empty trimmed sentences of text, newlines
// collapsed so heading remnants do not glue onto prose.
func sentencesOf(text string) []string {
	var out []string
	for _, part := range sentenceSplitRe.Split(text, -1) {
		s := strings.Join(strings.Fields(part), " ")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
