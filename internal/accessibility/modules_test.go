package accessibility

import (
	"strings"
	"testing"

	"github.com/plainread/plainread/pkg/types"
)

func TestADHDChunkingAndMarkers(t *testing.T) {
	// Forty sentences of ten words each: well over two 150-word chunks.
	sentence := "The study found that outcomes improved for nearly all participants."
	text := strings.Repeat(sentence+" ", 40)

	mod := &ADHDModule{}
	out, err := mod.Process(text, Context{Domain: types.DomainGeneral})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !strings.Contains(out, "**Part 1 of") {
		t.Error("missing first progress marker")
	}
	if !strings.Contains(out, "% complete)") {
		t.Error("missing percent-complete marker")
	}
	if !strings.Contains(out, "**FOUND**") {
		t.Error("key indicator not emphasized")
	}
	if !strings.Contains(out, "Focus break") && !strings.Contains(out, "Pause point") &&
		!strings.Contains(out, "Check in") && !strings.Contains(out, "Quick reset") {
		t.Error("no focus break in a long document")
	}
}

func TestADHDTLDROnLongChunks(t *testing.T) {
	if got := chunkTLDR("Too short to need a summary."); got != "" {
		t.Errorf("chunkTLDR on short chunk = %q, want empty", got)
	}

	long := strings.Repeat("Filler words pad this chunk out considerably here. ", 20) +
		"The results show a clear improvement."
	got := chunkTLDR(long)
	if !strings.Contains(got, "results show") {
		t.Errorf("chunkTLDR = %q, want the indicator sentence", got)
	}
}

func TestDyslexiaShortensAndSimplifies(t *testing.T) {
	text := "The researchers utilize a comprehensive battery of assessments to " +
		"demonstrate that the intervention produced approximately equivalent gains " +
		"across all of the demographic subgroups they examined during the trial period."

	mod := &DyslexiaModule{}
	out, err := mod.Process(text, Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if strings.Contains(strings.ToLower(out), "utilize") {
		t.Error("difficult word not simplified")
	}
	if !strings.Contains(out, "about") {
		t.Error("approximately should become about")
	}
	if !strings.Contains(out, "Reading tips") {
		t.Error("reading tips footer missing")
	}
}

func TestDyslexiaSentenceLimit(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	sentences := breakLongSentence(words)
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if n > maxSentenceWords {
			t.Errorf("sentence has %d words, limit %d: %q", n, maxSentenceWords, s)
		}
	}
}

func TestDyslexiaPronunciationGuide(t *testing.T) {
	mod := &DyslexiaModule{}
	out, err := mod.Process("The hypothesis was confirmed.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "(hy-POTH-e-sis)") {
		t.Errorf("missing pronunciation guide: %q", out)
	}
}

func TestAutismReplacesIdioms(t *testing.T) {
	mod := &AutismModule{}
	out, err := mod.Process("The findings shed light on the mechanism. In a nutshell, it works.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if strings.Contains(out, "shed light on") {
		t.Error("idiom survived replacement")
	}
	if !strings.Contains(out, "explain") {
		t.Error("literal replacement missing")
	}
	if !strings.Contains(out, "In summary") {
		t.Errorf("capitalized idiom not replaced with capitalized literal: %q", out)
	}
	if !strings.Contains(out, "What to expect") {
		t.Error("structure outline missing")
	}
}

func TestVisualDiagramsForDetectedConcepts(t *testing.T) {
	text := "The procedure had three steps. The treatment group scored 75 percent " +
		"compared to 45 percent for controls, a clear difference."

	mod := &VisualModule{}
	out, err := mod.Process(text, Context{Domain: types.DomainGeneral})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "Visual summaries") {
		t.Fatal("no diagram block for text with process and comparison cues")
	}
	if !strings.Contains(out, "75%") || !strings.Contains(out, "45%") {
		t.Error("comparison diagram did not pick up the percentages")
	}

	aux, err := mod.Supplementary(text, Context{})
	if err != nil {
		t.Fatalf("Supplementary: %v", err)
	}
	if len(aux.VisualAids) == 0 {
		t.Error("no chart descriptors for detected concepts")
	}
}

func TestVisualMetaphorByDomain(t *testing.T) {
	text := "Participants receiving the placebo reported fewer symptoms."

	mod := &VisualModule{}
	medical, err := mod.Process(text, Context{Domain: types.DomainMedical})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(medical, "sugar-pill") {
		t.Error("medical metaphor not applied")
	}

	general, err := mod.Process(text, Context{Domain: types.DomainGeneral})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if strings.Contains(general, "sugar-pill") {
		t.Error("medical metaphor applied outside the medical domain")
	}
}

func TestBeginnerExpandsAcronymFirstUseOnly(t *testing.T) {
	mod := &BeginnerModule{}
	out, err := mod.Process("An RCT was run. The RCT lasted a year.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n := strings.Count(out, "randomized controlled trial"); n != 1 {
		t.Errorf("expansion count = %d, want 1 (first use only)", n)
	}
	if !strings.Contains(out, "RCT (randomized controlled trial)") {
		t.Errorf("first use not expanded inline: %q", out)
	}
}

func TestBeginnerPrimerOnlyForPresentConcepts(t *testing.T) {
	mod := &BeginnerModule{}

	out, err := mod.Process("The control group stayed stable.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "Before you start") {
		t.Error("primer missing for text containing a primer concept")
	}
	if strings.Contains(out, "placebo") {
		t.Error("primer defined a concept absent from the text")
	}

	out, err = mod.Process("Nothing technical here at all.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if strings.Contains(out, "Before you start") {
		t.Error("primer added for text with no primer concepts")
	}
}

func TestESLReplacementsAndVocabulary(t *testing.T) {
	mod := &ESLModule{}
	out, err := mod.Process("The survey was carried out prior to the intervention.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if strings.Contains(out, "carried out") && !strings.Contains(out, "carried out -> did") {
		t.Error("phrasal verb not replaced")
	}
	if !strings.Contains(out, "before the intervention") {
		t.Errorf("prior to not replaced: %q", out)
	}
	if !strings.Contains(out, "**Vocabulary**") {
		t.Error("vocabulary list missing after replacements")
	}
	if !strings.Contains(out, "prior to -> before") {
		t.Error("vocabulary entry missing")
	}
}

func TestAudioSpeechPreparation(t *testing.T) {
	mod := &AudioModule{}
	out, err := mod.Process("Scores rose 12% — a **large** gain; controls were flat.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if strings.ContainsAny(out, "%*#—;") {
		t.Errorf("symbols or markers survived: %q", out)
	}
	if !strings.Contains(out, "percent") {
		t.Error("percent sign not spelled out")
	}
	if !strings.Contains(out, "Chapter 1.") {
		t.Error("chapter marker missing")
	}
	if !strings.Contains(out, "Listening guide") {
		t.Error("listening time header missing")
	}
}

func TestMedicalSafetyNotesAndQuestions(t *testing.T) {
	mod := &MedicalModule{}
	text := "The drug reduced symptoms. Side effects included mild nausea. " +
		"No serious risk was observed."
	out, err := mod.Process(text, Context{Domain: types.DomainMedical})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "Safety notes") {
		t.Error("safety note block missing for risk-bearing text")
	}
	if !strings.Contains(out, "Questions for your doctor") {
		t.Error("doctor question block missing")
	}

	aux, err := mod.Supplementary(out, Context{})
	if err != nil {
		t.Fatalf("Supplementary: %v", err)
	}
	if len(aux.Questions) == 0 {
		t.Error("no doctor questions in aux")
	}
}

func TestEducationStudyPromptsUseKeyFindings(t *testing.T) {
	mod := &EducationModule{}
	ctx := Context{KeyFindings: []string{"spaced practice beat cramming"}}
	out, err := mod.Process("Body text.", ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "spaced practice beat cramming") {
		t.Error("study prompt did not use the key finding")
	}
}

func TestPsychologyWellbeingNote(t *testing.T) {
	mod := &PsychologyModule{}
	out, err := mod.Process("Body text.", Context{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "Reflection") {
		t.Error("reflection block missing")
	}
	if !strings.Contains(out, "groups, not individuals") {
		t.Error("wellbeing note missing")
	}
}
