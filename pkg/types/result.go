// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Aux holds the auxiliary elements an accessibility module produces alongside
// its text rewrite.
type Aux struct {
	// VisualAids describes charts, diagrams, or layout aids the reader can use.
	VisualAids []string `json:"visual_aids,omitempty" yaml:"visual_aids,omitempty"`

	// ActionItems are concrete suggestions for working through the document.
	ActionItems []string `json:"action_items,omitempty" yaml:"action_items,omitempty"`

	// Questions are reader-facing questions contributed by the module.
	Questions []string `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// IsEmpty reports whether the module produced no auxiliary elements.
func (a Aux) IsEmpty() bool {
	return len(a.VisualAids) == 0 && len(a.ActionItems) == 0 && len(a.Questions) == 0
}

// ModuleOutput pairs a module name with its auxiliary elements. Outputs are
// kept in chain order, which is caller-specified.
type ModuleOutput struct {
	// Module is the registered module name (e.g. "adhd").
	Module string `json:"module" yaml:"module"`

	// Aux holds the module's auxiliary elements.
	Aux Aux `json:"aux" yaml:"aux"`
}

// Warning records a non-fatal problem encountered during translation, such as
// an unknown module name or a module that failed mid-chain.
type Warning struct {
	// Module names the accessibility module involved, if any.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Message describes the problem.
	Message string `json:"message" yaml:"message"`
}

// TranslationResult is the aggregate output of one translation request.
// It is built once by the orchestrator and immutable afterwards.
type TranslationResult struct {
	// DocumentID identifies the source document.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// SourceName is the file name, URL, or label the text came from.
	SourceName string `json:"source_name" yaml:"source_name"`

	// Domain is the subject domain the pipeline ran under.
	Domain Domain `json:"domain" yaml:"domain"`

	// DomainScores maps each known domain to its classifier score. Empty when
	// the caller overrode the domain.
	DomainScores map[Domain]int `json:"domain_scores,omitempty" yaml:"domain_scores,omitempty"`

	// ReadingLevel is the estimated reading level of the original text.
	ReadingLevel ReadingLevel `json:"reading_level" yaml:"reading_level"`

	// WordCount is the word count of the original text.
	WordCount int `json:"word_count" yaml:"word_count"`

	// SimplifiedText is the fully rewritten document text after claim
	// translation, jargon substitution, and the module chain.
	SimplifiedText string `json:"simplified_text" yaml:"simplified_text"`

	// KeyFindings lists the main results in plain language, most significant
	// first.
	KeyFindings []string `json:"key_findings" yaml:"key_findings"`

	// Methodology lists plain-language notes on how the study was done.
	Methodology []string `json:"methodology" yaml:"methodology"`

	// WhyItMatters lists reasons the findings are relevant to a lay reader.
	WhyItMatters []string `json:"why_it_matters" yaml:"why_it_matters"`

	// Questions lists questions the reader may want to ask or investigate.
	Questions []string `json:"questions" yaml:"questions"`

	// Claims lists the statistical claims matched and translated.
	Claims []StatisticalClaim `json:"claims,omitempty" yaml:"claims,omitempty"`

	// Substitutions lists the jargon terms replaced, for the report glossary.
	Substitutions []TermSubstitution `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`

	// ModuleOutputs holds per-module auxiliary elements in chain order.
	ModuleOutputs []ModuleOutput `json:"module_outputs,omitempty" yaml:"module_outputs,omitempty"`

	// ModulesApplied lists the modules that ran successfully, in chain order.
	ModulesApplied []string `json:"modules_applied" yaml:"modules_applied"`

	// Warnings records non-fatal problems (unknown modules, module failures).
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Confidence scores how much structural and statistical signal was found,
	// in [0,1]. Deterministic for a given input.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// CreatedAt is when the translation was produced.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// BatchSummary reports the outcome of translating a batch of documents.
type BatchSummary struct {
	// Translated is the number of documents translated successfully.
	Translated int `json:"translated" yaml:"translated"`

	// Skipped is the number of documents skipped (e.g. below minimum length).
	Skipped int `json:"skipped" yaml:"skipped"`

	// Failed is the number of documents that could not be processed.
	Failed int `json:"failed" yaml:"failed"`
}

// Total returns the total number of documents processed.
func (s BatchSummary) Total() int {
	return s.Translated + s.Skipped + s.Failed
}

// HasFailures reports whether any document failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}
