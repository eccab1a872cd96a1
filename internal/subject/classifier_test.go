package subject

import (
	"strings"
	"testing"

	"github.com/plainread/plainread/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Domain
	}{
		{
			name: "medical text",
			text: "The patient received treatment in a clinical trial. Diagnosis of the disease improved with the drug.",
			want: types.DomainMedical,
		},
		{
			name: "psychology text",
			text: "Participants completed a questionnaire about anxiety and depression. Cognitive behavior changes were measured.",
			want: types.DomainPsychology,
		},
		{
			name: "education text",
			text: "Students in the classroom showed improved learning after the curriculum intervention. Teaching methods were compared pre-test and post-test.",
			want: types.DomainEducation,
		},
		{
			name: "social science text",
			text: "The community survey used interviews and focus groups to study cultural and demographic change in society.",
			want: types.DomainSocialScience,
		},
		{
			name: "generic science text",
			text: "The experiment tested the hypothesis with a control group. Data analysis of the results supported the study.",
			want: types.DomainScience,
		},
		{
			name: "no signal",
			text: "Once upon a time there was a quiet village near a river.",
			want: types.DomainGeneral,
		},
		{
			name: "empty text",
			text: "",
			want: types.DomainGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scores := Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q (scores %v)", got, tt.want, scores)
			}
		})
	}
}

func TestClassifyScoreMap(t *testing.T) {
	_, scores := Classify("The patient received treatment.")
	if len(scores) != len(profiles) {
		t.Fatalf("score map has %d entries, want %d", len(scores), len(profiles))
	}
	if scores[types.DomainMedical] != 2*keywordWeight {
		t.Errorf("medical score = %d, want %d", scores[types.DomainMedical], 2*keywordWeight)
	}
	if scores[types.DomainEducation] != 0 {
		t.Errorf("education score = %d, want 0", scores[types.DomainEducation])
	}
}

func TestClassifyEmptyTextScoresZero(t *testing.T) {
	got, scores := Classify("")
	if got != types.DomainGeneral {
		t.Fatalf("Classify(\"\") = %q, want general", got)
	}
	for d, s := range scores {
		if s != 0 {
			t.Errorf("domain %q scored %d on empty text, want 0", d, s)
		}
	}
}

func TestClassifyTieGoesToDeclarationOrder(t *testing.T) {
	// "therapy" is a keyword for both medical and psychology; with equal
	// scores the earlier declaration (medical) must win.
	got, scores := Classify("therapy")
	if scores[types.DomainMedical] != scores[types.DomainPsychology] {
		t.Fatalf("expected tie, got medical=%d psychology=%d",
			scores[types.DomainMedical], scores[types.DomainPsychology])
	}
	if got != types.DomainMedical {
		t.Errorf("tie broke to %q, want medical", got)
	}
}

func TestClassifyJournalAndMethodWeights(t *testing.T) {
	// One journal mention (5) + one method phrase (3) should outweigh
	// a competing domain with two keyword hits (4).
	text := "Published in the Lancet, the work used a cohort study. Students learning."
	got, scores := Classify(text)
	if got != types.DomainMedical {
		t.Errorf("Classify() = %q, want medical (scores %v)", got, scores)
	}
	if scores[types.DomainMedical] != journalWeight+methodWeight {
		t.Errorf("medical score = %d, want %d", scores[types.DomainMedical], journalWeight+methodWeight)
	}
}

func TestCountPhraseWordBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   int
	}{
		{"substring of longer word", "naturally occurring", "nature", 0},
		{"exact word", "published in nature today", "nature", 1},
		{"repeated", "data, data, and more data", "data", 3},
		{"phrase across words", "a randomized clinical trial design", "clinical trial", 1},
		{"hyphen boundary counts", "a case-control design", "case-control", 1},
		{"start and end of text", "nature", "nature", 1},
		{"empty phrase", "anything", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countPhrase(tt.text, tt.phrase); got != tt.want {
				t.Errorf("countPhrase(%q, %q) = %d, want %d", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestClassifyNeverPanicsOnOddInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("a", 10000),
		"\x00\x01\x02",
		"ünïcödé tëxt with pâtient", // decorated letters must not split words
	}
	for _, in := range inputs {
		got, _ := Classify(in)
		if !Known(got) {
			t.Errorf("Classify returned unknown domain %q", got)
		}
	}
}
