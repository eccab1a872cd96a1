// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/plainread/plainread/pkg/types"
)

// Fixed phrases for the p-value family.
const (
	phraseNotChance = "almost certainly not due to chance"
	phraseChance    = "could be due to chance"
)

// significanceThreshold is the conventional p-value cutoff.
const significanceThreshold = 0.05

// Notation patterns. A number is digits with an optional decimal part, or a
// bare decimal like ".05"; sample sizes may carry thousands separators.
var (
	// ciRe matches interval notation like "95% CI [0.2, 0.5]",
	// "90% CI: 1.1 to 2.3", or "99% confidence interval (0.8-1.6)".
	ciRe = regexp.MustCompile(`(?i)\b(\d{2})%\s*(?:CI|confidence interval)[:\s]*[\[(]?\s*(-?(?:\d+\.?\d*|\.\d+))\s*(?:,|to|–|-)\s*(-?(?:\d+\.?\d*|\.\d+))\s*[\])]?`)

	// pValueRe matches "p < .05", "p=0.03", "p ≥ 0.1".
	pValueRe = regexp.MustCompile(`(?i)\bp\s*(<=|>=|[<>=≤≥])\s*((?:0?\.\d+)|0|1(?:\.0*)?)`)

	// effectRe matches "d = 0.82" and "Cohen's d = 0.3". The word boundary
	// keeps the d in "sd" out of reach.
	effectRe = regexp.MustCompile(`(?i)\b(?:cohen'?s\s+)?d\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)

	// corrRe matches correlation coefficients like "r = .72" and "r = -0.41".
	corrRe = regexp.MustCompile(`(?i)\br\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)

	// sampleRe matches sample sizes like "n = 127" and "N = 1,024".
	sampleRe = regexp.MustCompile(`(?i)\bn\s*=\s*(\d{1,3}(?:,\d{3})+|\d+)`)

	// testStatRe matches t and F statistics with optional degrees of freedom:
	// "t(48) = 2.1", "F(2, 97) = 5.4", "t = 1.9".
	testStatRe = regexp.MustCompile(`(?i)\b[tf]\s*(?:\(\s*\d+(?:\.\d+)?(?:\s*,\s*\d+(?:\.\d+)?)?\s*\))?\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)

	// chiRe matches chi-square statistics: "χ²(2) = 9.3", "chi-square = 4.1".
	chiRe = regexp.MustCompile(`(?i)(?:χ²|χ2|chi[- ]?squared?)\s*(?:\(\s*\d+\s*\))?\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)

	// meanRe and sdRe match descriptive statistics "M = 4.2" and "SD = 1.1".
	meanRe = regexp.MustCompile(`(?i)\bm\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)
	sdRe   = regexp.MustCompile(`(?i)\bsd\s*=\s*(-?(?:\d+\.?\d*|\.\d+))`)
)

// matcher pairs one notation pattern with its plain-language template.
type matcher struct {
	kind   types.ClaimKind
	re     *regexp.Regexp
	render func(m []string) string
}

// matchers lists the notation families in priority order. The first matcher
// to claim a span wins; order resolves genuine ambiguities (an interval can
// contain bare numbers, "p = .03" must never parse as a descriptive).
var matchers = []matcher{
	{types.ClaimConfidenceInterval, ciRe, renderInterval},
	{types.ClaimPValue, pValueRe, renderPValue},
	{types.ClaimEffectSize, effectRe, renderEffectSize},
	{types.ClaimCorrelation, corrRe, renderCorrelation},
	{types.ClaimSampleSize, sampleRe, renderSampleSize},
	{types.ClaimTestStatistic, testStatRe, renderTestStatistic},
	{types.ClaimTestStatistic, chiRe, renderTestStatistic},
	{types.ClaimDescriptive, meanRe, renderMean},
	{types.ClaimDescriptive, sdRe, renderSD},
}

func renderInterval(m []string) string {
	return fmt.Sprintf("we're pretty sure the true value is between %s and %s", m[2], m[3])
}

func renderPValue(m []string) string {
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return phraseChance
	}
	switch m[1] {
	case "<", "=", "≤", "<=":
		if v <= significanceThreshold {
			return phraseNotChance
		}
	}
	return phraseChance
}

func renderEffectSize(m []string) string {
	v, _ := strconv.ParseFloat(m[1], 64)
	size := "large"
	switch a := math.Abs(v); {
	case a < 0.2:
		size = "negligible"
	case a < 0.5:
		size = "small"
	case a < 0.8:
		size = "moderate"
	}
	return fmt.Sprintf("a %s practical difference", size)
}

func renderCorrelation(m []string) string {
	v, _ := strconv.ParseFloat(m[1], 64)
	a := math.Abs(v)
	if a < 0.2 {
		return "little to no relationship between the measures"
	}
	strength := "a weak"
	switch {
	case a >= 0.7:
		strength = "a strong"
	case a >= 0.4:
		strength = "a moderate"
	}
	direction := "where both measures rise together"
	if v < 0 {
		direction = "where one measure falls as the other rises"
	}
	return fmt.Sprintf("%s link %s", strength, direction)
}

func renderSampleSize(m []string) string {
	return fmt.Sprintf("%s people or cases studied", m[1])
}

func renderTestStatistic(_ []string) string {
	return "a test score used to compute the probability of chance"
}

func renderMean(m []string) string {
	return fmt.Sprintf("an average of %s", m[1])
}

func renderSD(m []string) string {
	return fmt.Sprintf("a typical spread of about %s", m[1])
}
