package jargon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plainread/plainread/internal/claims"
	"github.com/plainread/plainread/pkg/types"
)

func TestApplyDomainScopedReplacement(t *testing.T) {
	dict := Builtin()

	tests := []struct {
		name   string
		domain types.Domain
		text   string
		want   string
	}{
		{
			name:   "general term under medical",
			domain: types.DomainMedical,
			text:   "the double-blind design held",
			want:   "the neither participants nor researchers knew who got real treatment design held",
		},
		{
			name:   "general term under unrecognized domain",
			domain: types.DomainScience,
			text:   "the double-blind design held",
			want:   "the neither participants nor researchers knew who got real treatment design held",
		},
		{
			name:   "medical term under medical",
			domain: types.DomainMedical,
			text:   "reported adverse events were rare",
			want:   "reported bad side effects were rare",
		},
		{
			name:   "medical term ignored under education",
			domain: types.DomainEducation,
			text:   "reported adverse events were rare",
			want:   "reported adverse events were rare",
		},
		{
			name:   "statistics term under any domain",
			domain: types.DomainEducation,
			text:   "the mean score rose",
			want:   "the average score rose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRewriter(dict, tt.domain)
			got, _ := r.Apply(tt.text, nil)
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyLongestMatchFirst(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainGeneral)

	got, subs := r.Apply("the null hypothesis was rejected", nil)
	want := "the assumption that there's no real effect was rejected"
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
	if len(subs) != 1 || subs[0].Term != "null hypothesis" {
		t.Errorf("substitutions = %+v, want single null hypothesis entry", subs)
	}
}

func TestApplyLongestMatchWithOverlayPrefixTerm(t *testing.T) {
	// An overlay adds "confidence" as its own term; "confidence interval"
	// must still win where both match.
	dir := t.TempDir()
	overlay := filepath.Join(dir, "extra.yaml")
	writeFile(t, overlay, "general:\n  confidence: trust in the result\n")

	dict, err := Load([]string{overlay})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := NewRewriter(dict, types.DomainGeneral)

	got, _ := r.Apply("a narrow confidence interval, high confidence", nil)
	if !strings.Contains(got, "range where the true answer probably lies") {
		t.Errorf("longer term lost: %q", got)
	}
	if !strings.Contains(got, "trust in the result") {
		t.Errorf("standalone shorter term not applied: %q", got)
	}
}

func TestApplyCountsEveryOccurrence(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainGeneral)

	got, subs := r.Apply("placebo first, placebo second, placebo third", nil)
	if strings.Contains(got, "placebo") {
		t.Errorf("occurrences left behind: %q", got)
	}
	if len(subs) != 1 {
		t.Fatalf("substitutions = %+v, want one entry", subs)
	}
	if subs[0].Count != 3 {
		t.Errorf("count = %d, want 3", subs[0].Count)
	}
}

func TestApplyPreservesLeadingCapital(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainGeneral)

	got, _ := r.Apply("Methodology is described below.", nil)
	if !strings.HasPrefix(got, "How the study was done") {
		t.Errorf("capitalization lost: %q", got)
	}
}

func TestApplySkipsProtectedSpans(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainGeneral)

	text := "the confidence interval matters"
	start := strings.Index(text, "confidence")
	protected := []claims.Span{{Start: start, End: start + len("confidence interval")}}

	got, subs := r.Apply(text, protected)
	if got != text {
		t.Errorf("protected span rewritten: %q", got)
	}
	if len(subs) != 0 {
		t.Errorf("substitutions recorded for protected span: %+v", subs)
	}
}

func TestApplyIdempotentOnCleanOutput(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainMedical)

	first, subs := r.Apply("the double-blind placebo phase ended", nil)
	if len(subs) == 0 {
		t.Fatal("expected substitutions on first pass")
	}
	second, subs2 := r.Apply(first, nil)
	if second != first {
		t.Errorf("second pass changed text:\n first: %q\nsecond: %q", first, second)
	}
	if len(subs2) != 0 {
		t.Errorf("second pass recorded substitutions: %+v", subs2)
	}
}

func TestApplyWordBoundaries(t *testing.T) {
	dict := Builtin()
	r := NewRewriter(dict, types.DomainGeneral)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"term inside longer word", "the meaning of life", "the meaning of life"},
		{"exact word", "the mean of both groups", "the average of both groups"},
		{"hyphenated term", "a meta-analysis of trials", "a study that combines results from multiple studies of trials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := r.Apply(tt.text, nil)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCandidatesSortedLongestFirst(t *testing.T) {
	dict := Builtin()
	candidates := dict.Candidates(types.DomainMedical)
	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	for i := 1; i < len(candidates); i++ {
		if len(candidates[i].Term) > len(candidates[i-1].Term) {
			t.Fatalf("candidates not sorted by descending length: %q before %q",
				candidates[i-1].Term, candidates[i].Term)
		}
	}

	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.Term] {
			t.Errorf("duplicate candidate %q", c.Term)
		}
		seen[c.Term] = true
	}
	if !seen["clinical trial"] || !seen["p-value"] || !seen["mean"] {
		t.Error("candidate set missing expected domain, general, or statistics terms")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "custom.yaml")
	writeFile(t, overlay, `
medical:
  titration: slowly adjusting the dose
  efficacy: how well it works
`)

	dict, err := Load([]string{overlay})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	r := NewRewriter(dict, types.DomainMedical)
	got, _ := r.Apply("titration improved efficacy", nil)
	want := "slowly adjusting the dose improved how well it works"
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}

	if n := dict.Size(types.DomainMedical); n != len(builtinTables[types.DomainMedical])+1 {
		t.Errorf("medical table size = %d, want builtin+1", n)
	}
}

func TestLoadOverlayErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown table", "chemistry:\n  titration: adjusting\n"},
		{"empty replacement", "medical:\n  titration: \"\"\n"},
		{"not yaml", "::::not yaml at all\n\t-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			writeFile(t, path, tt.content)
			if _, err := Load([]string{path}); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}

	if _, err := Load([]string{filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
