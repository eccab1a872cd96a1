// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// riskCues mark sentences collected into the medical safety note.
var riskCues = []string{
	"risk", "side effect", "adverse", "contraindicat", "warning", "caution",
}

// MedicalModule appends a safety note collecting risk-related sentences and
// a question list for a doctor's visit. It is caller-requested like any
// other module; a medical subject domain does not auto-enable it.
type MedicalModule struct{}

func (m *MedicalModule) Name() string { return "medical" }

func (m *MedicalModule) Description() string {
	return "Collects safety-relevant sentences and builds a question list for your doctor"
}

func (m *MedicalModule) Process(text string, ctx Context) (string, error) {
	var b strings.Builder
	b.WriteString(text)

	if notes := safetySentences(text); len(notes) > 0 {
		b.WriteString("\n\n**Safety notes from this document**\n\n")
		for _, n := range notes {
			b.WriteString("- " + n + "\n")
		}
	}

	b.WriteString("\n**Questions for your doctor**\n\n")
	for _, q := range doctorQuestions {
		b.WriteString("- " + q + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (m *MedicalModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		Questions: append([]string(nil), doctorQuestions...),
		ActionItems: []string{
			"Bring this summary to your next appointment",
			"Do not change any treatment based on one study",
		},
	}, nil
}

var doctorQuestions = []string{
	"Does this research apply to my specific condition?",
	"Should anything about my current treatment change because of this?",
	"What are the risks and benefits for someone like me?",
	"Are there clinical trials I could take part in?",
}

// safetySentences returns sentences mentioning risks or side effects,
// capped at five.
func safetySentences(text string) []string {
	var out []string
	for _, s := range splitSentences(text) {
		lower := strings.ToLower(s)
		for _, cue := range riskCues {
			if strings.Contains(lower, cue) {
				out = append(out, s+".")
				break
			}
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}

// EducationModule turns key findings into study prompts and contributes
// classroom-application suggestions.
type EducationModule struct{}

func (m *EducationModule) Name() string { return "education" }

func (m *EducationModule) Description() string {
	return "Adds study prompts and classroom-application suggestions"
}

func (m *EducationModule) Process(text string, ctx Context) (string, error) {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n**Study support**\n\n")
	if len(ctx.KeyFindings) == 0 {
		b.WriteString("- Summarize the main claim of this document in one sentence.\n")
	}
	for i, f := range ctx.KeyFindings {
		if i == 3 {
			break
		}
		b.WriteString("- Restate this finding in your own words: " + f + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (m *EducationModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		Questions: []string{
			"How could a teacher use this finding in a classroom?",
			"Does this match how you learn best?",
		},
		ActionItems: []string{
			"Share one relevant finding with a teacher or tutor",
			"Try one suggested strategy in your next study session",
		},
	}, nil
}

// PsychologyModule appends reflection prompts and a wellbeing note.
type PsychologyModule struct{}

func (m *PsychologyModule) Name() string { return "psychology" }

func (m *PsychologyModule) Description() string {
	return "Adds reflection prompts and a wellbeing note"
}

func (m *PsychologyModule) Process(text string, ctx Context) (string, error) {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n**Reflection**\n\n")
	b.WriteString("- Which finding matches your own experience, and which does not?\n")
	b.WriteString("- What would you want to observe about yourself this week to test it?\n")
	b.WriteString("\n*Research describes groups, not individuals. If something here raises " +
		"concerns about your own mental health, talk to a professional rather than self-diagnosing.*")
	return b.String(), nil
}

func (m *PsychologyModule) Supplementary(text string, ctx Context) (types.Aux, error) {
	return types.Aux{
		Questions: []string{
			"How might this apply to my situation?",
			"Could this help me understand my own behavior better?",
		},
		ActionItems: []string{
			"Keep a short note of one behavior this research made you curious about",
		},
	}, nil
}
