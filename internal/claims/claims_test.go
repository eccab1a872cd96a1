package claims

import (
	"strings"
	"testing"

	"github.com/plainread/plainread/pkg/types"
)

// --- rendering templates ---

func TestRewriteSingleNotations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind types.ClaimKind
		wantSub  string // substring expected in the rewritten text
	}{
		{"p below threshold", "significant at p < .05 overall", types.ClaimPValue, "almost certainly not due to chance"},
		{"p equals small", "we found p = 0.03 here", types.ClaimPValue, "almost certainly not due to chance"},
		{"p above threshold", "but p > 0.05 for the rest", types.ClaimPValue, "could be due to chance"},
		{"p equals large", "with p = 0.20 in the control", types.ClaimPValue, "could be due to chance"},
		{"p unicode le", "held at p ≤ 0.01", types.ClaimPValue, "almost certainly not due to chance"},
		{"p ge", "failed with p >= 0.9", types.ClaimPValue, "could be due to chance"},
		{"ci brackets", "the difference was 0.35 (95% CI [0.2, 0.5])", types.ClaimConfidenceInterval, "between 0.2 and 0.5"},
		{"ci to", "rate ratio 1.7, 90% CI: 1.1 to 2.3", types.ClaimConfidenceInterval, "between 1.1 and 2.3"},
		{"ci negative", "change of -0.4, 95% confidence interval (-0.7, -0.1)", types.ClaimConfidenceInterval, "between -0.7 and -0.1"},
		{"effect negligible", "a shift of d = 0.1 appeared", types.ClaimEffectSize, "a negligible practical difference"},
		{"effect small", "we saw d = 0.3 in trials", types.ClaimEffectSize, "a small practical difference"},
		{"effect moderate", "groups differed, d = 0.6 overall", types.ClaimEffectSize, "a moderate practical difference"},
		{"effect large", "Cohen's d = 0.9 for the treated group", types.ClaimEffectSize, "a large practical difference"},
		{"effect negative large", "decline of d = -0.85 was seen", types.ClaimEffectSize, "a large practical difference"},
		{"correlation strong", "sleep and mood, r = .72, were linked", types.ClaimCorrelation, "a strong link where both measures rise together"},
		{"correlation negative", "stress fell as r = -0.45 showed", types.ClaimCorrelation, "a moderate link where one measure falls as the other rises"},
		{"correlation weak sign", "barely related at r = 0.1 overall", types.ClaimCorrelation, "little to no relationship"},
		{"sample size", "we recruited n = 127 volunteers", types.ClaimSampleSize, "127 people or cases studied"},
		{"sample size thousands", "registry of N = 1,024 records", types.ClaimSampleSize, "1,024 people or cases studied"},
		{"t statistic", "groups differed, t(48) = 2.1, as shown", types.ClaimTestStatistic, "a test score used to compute the probability of chance"},
		{"f statistic", "the model fit, F(2, 97) = 5.4, held", types.ClaimTestStatistic, "a test score"},
		{"chi square symbol", "counts varied, χ²(2) = 9.3, across sites", types.ClaimTestStatistic, "a test score"},
		{"chi square words", "independence failed, chi-square = 4.1 there", types.ClaimTestStatistic, "a test score"},
		{"mean", "scores averaged M = 4.2 points", types.ClaimDescriptive, "an average of 4.2"},
		{"standard deviation", "with spread SD = 1.1 around it", types.ClaimDescriptive, "a typical spread of about 1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rewrite(tt.text, nil)
			if len(got.Claims) != 1 {
				t.Fatalf("got %d claims, want 1: %+v", len(got.Claims), got.Claims)
			}
			c := got.Claims[0]
			if c.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", c.Kind, tt.wantKind)
			}
			if !strings.Contains(got.Text, tt.wantSub) {
				t.Errorf("rewritten text %q missing %q", got.Text, tt.wantSub)
			}
			if strings.Contains(got.Text, c.Original) {
				t.Errorf("rewritten text still contains original notation %q", c.Original)
			}
			if got.Text[0:c.Start] != tt.text[0:c.Start] {
				t.Errorf("text before claim changed")
			}
		})
	}
}

// --- spec-style scenario ---

func TestRewriteRemovesRawPValueToken(t *testing.T) {
	text := "Results\nThe treatment group improved, p<0.001, compared with controls.\n"
	sections := []types.Section{{Name: "results", Start: 8, End: len(text)}}

	got := Rewrite(text, sections)
	if strings.Contains(got.Text, "p<0.001") {
		t.Errorf("raw token survived: %q", got.Text)
	}
	if !strings.Contains(got.Text, "almost certainly not due to chance") {
		t.Errorf("missing plain phrase: %q", got.Text)
	}
	if len(got.Claims) != 1 {
		t.Fatalf("got %d claims, want 1", len(got.Claims))
	}
	if got.Claims[0].Section != "results" {
		t.Errorf("claim section = %q, want results", got.Claims[0].Section)
	}
	if got.Claims[0].Original != "p<0.001" {
		t.Errorf("claim original = %q", got.Claims[0].Original)
	}
}

// --- priority and overlap ---

func TestRewritePriorityIntervalBeatsSampleSize(t *testing.T) {
	// The interval matcher runs first, so the "n = 95" reading of this
	// (deliberately ambiguous) fragment must lose.
	text := "n = 95% CI 3 to 4"
	got := Rewrite(text, nil)
	if len(got.Claims) != 1 {
		t.Fatalf("got %d claims, want 1: %+v", len(got.Claims), got.Claims)
	}
	if got.Claims[0].Kind != types.ClaimConfidenceInterval {
		t.Errorf("kind = %q, want confidence_interval", got.Claims[0].Kind)
	}
}

func TestRewriteWordBoundaryKeepsSDOutOfEffectSize(t *testing.T) {
	got := Rewrite("spread was SD = 0.9 overall", nil)
	if len(got.Claims) != 1 {
		t.Fatalf("got %d claims, want 1", len(got.Claims))
	}
	if got.Claims[0].Kind != types.ClaimDescriptive {
		t.Errorf("kind = %q, want descriptive", got.Claims[0].Kind)
	}
}

func TestRewriteMultipleClaimsInOrder(t *testing.T) {
	text := "correlation r = .72 was strong, p < .001, with d = 0.5 and n = 80."
	got := Rewrite(text, nil)
	if len(got.Claims) != 4 {
		t.Fatalf("got %d claims, want 4: %+v", len(got.Claims), got.Claims)
	}
	wantKinds := []types.ClaimKind{
		types.ClaimCorrelation,
		types.ClaimPValue,
		types.ClaimEffectSize,
		types.ClaimSampleSize,
	}
	for i, want := range wantKinds {
		if got.Claims[i].Kind != want {
			t.Errorf("claim %d kind = %q, want %q", i, got.Claims[i].Kind, want)
		}
	}
	for i := 1; i < len(got.Claims); i++ {
		if got.Claims[i].Start < got.Claims[i-1].End {
			t.Errorf("claims overlap or out of order: %+v", got.Claims)
		}
	}
}

// --- protected spans ---

func TestRewriteProtectedSpansCoverRenderings(t *testing.T) {
	got := Rewrite("effect d = 0.6 held at p < .01 in the sample", nil)
	if len(got.Protected) != len(got.Claims) {
		t.Fatalf("protected %d != claims %d", len(got.Protected), len(got.Claims))
	}
	for i, span := range got.Protected {
		if got.Text[span.Start:span.End] != got.Claims[i].Plain {
			t.Errorf("protected[%d] = %q, want %q",
				i, got.Text[span.Start:span.End], got.Claims[i].Plain)
		}
	}
}

// --- degradation ---

func TestRewriteLeavesUnmatchedFragments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"r squared", "the model explained R2 = 0.45 of variance"},
		{"bare equation", "we set x = 10 for all runs"},
		{"percent alone", "about 30% of cases improved"},
		{"plain prose", "no statistics appear in this sentence at all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rewrite(tt.text, nil)
			if got.Text != tt.text {
				t.Errorf("text changed: %q -> %q", tt.text, got.Text)
			}
			if len(got.Claims) != 0 {
				t.Errorf("unexpected claims: %+v", got.Claims)
			}
		})
	}
}

func TestRewriteEmptyText(t *testing.T) {
	got := Rewrite("", nil)
	if got.Text != "" || len(got.Claims) != 0 || len(got.Protected) != 0 {
		t.Errorf("empty input produced %+v", got)
	}
}
