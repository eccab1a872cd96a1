// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package subject classifies document text into a subject domain using
// weighted keyword, journal, and method-phrase scoring.
package subject

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/plainread/plainread/pkg/types"
)

// Scoring weights per occurrence.
const (
	keywordWeight = 2
	journalWeight = 5
	methodWeight  = 3
)

// Profile describes the scoring signals for one subject domain.
type Profile struct {
	// Domain is the label assigned when this profile scores highest.
	Domain types.Domain

	// Keywords are domain-indicative words, weighted 2 per occurrence.
	Keywords []string

	// Journals are venue names, weighted 5 per occurrence.
	Journals []string

	// Methods are method phrases, weighted 3 per occurrence.
	Methods []string
}

// profiles lists the known domains in declaration order. Declaration order
// breaks ties: an earlier domain keeps the win unless a later one scores
// strictly higher.
var profiles = []Profile{
	{
		Domain:   types.DomainMedical,
		Keywords: []string{"patient", "treatment", "clinical", "therapy", "diagnosis", "disease", "medicine", "health", "drug", "symptom"},
		Journals: []string{"nejm", "lancet", "jama", "bmj"},
		Methods:  []string{"clinical trial", "cohort study", "case-control"},
	},
	{
		Domain:   types.DomainPsychology,
		Keywords: []string{"behavior", "cognitive", "mental", "psychological", "participants", "mood", "anxiety", "depression", "therapy"},
		Journals: []string{"journal of personality", "psychological science", "cognition"},
		Methods:  []string{"survey", "questionnaire", "experiment"},
	},
	{
		Domain:   types.DomainEducation,
		Keywords: []string{"students", "learning", "teaching", "classroom", "curriculum", "academic", "school", "education"},
		Journals: []string{"educational research", "journal of education"},
		Methods:  []string{"pre-test", "post-test", "intervention"},
	},
	{
		Domain:   types.DomainSocialScience,
		Keywords: []string{"society", "social", "community", "cultural", "demographic", "survey", "interview"},
		Journals: []string{"american sociological review", "social forces"},
		Methods:  []string{"ethnography", "interviews", "focus groups"},
	},
	{
		Domain:   types.DomainScience,
		Keywords: []string{"experiment", "hypothesis", "data", "analysis", "research", "study", "results"},
		Journals: []string{"nature", "science", "cell"},
		Methods:  []string{"experimental", "control group", "variables"},
	},
}

// Classify scores every known domain against the text and returns the
// highest-scoring domain plus the full score map. All-zero scores yield
// DomainGeneral. Classify never fails; empty text is general with score 0.
func Classify(text string) (types.Domain, map[types.Domain]int) {
	lower := strings.ToLower(text)
	scores := make(map[types.Domain]int, len(profiles))

	best := types.DomainGeneral
	bestScore := 0
	for _, p := range profiles {
		score := 0
		for _, kw := range p.Keywords {
			score += keywordWeight * countPhrase(lower, kw)
		}
		for _, j := range p.Journals {
			score += journalWeight * countPhrase(lower, j)
		}
		for _, m := range p.Methods {
			score += methodWeight * countPhrase(lower, m)
		}
		scores[p.Domain] = score
		if score > bestScore {
			best = p.Domain
			bestScore = score
		}
	}
	return best, scores
}

// Known reports whether domain is a classifiable subject domain or the
// general fallback.
func Known(domain types.Domain) bool {
	if domain == types.DomainGeneral {
		return true
	}
	for _, p := range profiles {
		if p.Domain == domain {
			return true
		}
	}
	return false
}

// Profiles returns copies of the domain profiles in declaration order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = Profile{
			Domain:   p.Domain,
			Keywords: append([]string(nil), p.Keywords...),
			Journals: append([]string(nil), p.Journals...),
			Methods:  append([]string(nil), p.Methods...),
		}
	}
	return out
}

// Domains returns the known domain labels, declaration order first, then
// the general fallback.
func Domains() []types.Domain {
	out := make([]types.Domain, 0, len(profiles)+1)
	for _, p := range profiles {
		out = append(out, p.Domain)
	}
	out = append(out, types.DomainGeneral)
	return out
}

// SortedScores returns the score map as domain/score pairs ordered by
// descending score, ties by declaration order.
func SortedScores(scores map[types.Domain]int) []ScoredDomain {
	order := make(map[types.Domain]int, len(profiles))
	for i, p := range profiles {
		order[p.Domain] = i
	}
	out := make([]ScoredDomain, 0, len(scores))
	for d, s := range scores {
		out = append(out, ScoredDomain{Domain: d, Score: s})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return order[out[i].Domain] < order[out[j].Domain]
	})
	return out
}

// ScoredDomain pairs a domain with its classifier score.
type ScoredDomain struct {
	Domain types.Domain
	Score  int
}

// countPhrase counts word-boundary occurrences of phrase in lower-cased text.
// A match must not be preceded or followed by a letter or digit, so "nature"
// does not match inside "naturally".
func countPhrase(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	count := 0
	for pos := 0; ; {
		i := strings.Index(text[pos:], phrase)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		pos = start + 1
	}
	return count
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
