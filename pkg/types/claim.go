// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClaimKind categorizes a statistical notation family matched in document text.
type ClaimKind string

const (
	ClaimConfidenceInterval ClaimKind = "confidence_interval"
	ClaimPValue             ClaimKind = "p_value"
	ClaimEffectSize         ClaimKind = "effect_size"
	ClaimCorrelation        ClaimKind = "correlation"
	ClaimSampleSize         ClaimKind = "sample_size"
	ClaimTestStatistic      ClaimKind = "test_statistic"
	ClaimDescriptive        ClaimKind = "descriptive"
)

// StatisticalClaim records one matched statistical notation and its
// plain-language rendering. Offsets refer to the raw document text before
// any rewriting.
type StatisticalClaim struct {
	// Kind is the notation family that claimed the span.
	Kind ClaimKind `json:"kind" yaml:"kind"`

	// Original is the matched text exactly as it appeared.
	Original string `json:"original" yaml:"original"`

	// Plain is the template-rendered plain-language statement.
	Plain string `json:"plain" yaml:"plain"`

	// Section is the name of the section enclosing the match.
	Section string `json:"section" yaml:"section"`

	// Start is the byte offset of the match in the raw text.
	Start int `json:"start" yaml:"start"`

	// End is the byte offset one past the end of the match.
	End int `json:"end" yaml:"end"`
}

// TermSubstitution records one dictionary term that was rewritten into its
// plain-language explanation, with the number of occurrences replaced.
type TermSubstitution struct {
	// Term is the dictionary term as declared (lowercase).
	Term string `json:"term" yaml:"term"`

	// Domain is the term set the substitution came from ("general",
	// "statistics", or a subject domain).
	Domain Domain `json:"domain" yaml:"domain"`

	// Replacement is the plain-language explanation that replaced the term.
	Replacement string `json:"replacement" yaml:"replacement"`

	// Count is how many occurrences were replaced.
	Count int `json:"count" yaml:"count"`
}
