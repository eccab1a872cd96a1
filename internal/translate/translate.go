// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate drives the full translation pipeline: subject
// classification, section extraction, statistical claim rewriting, jargon
// substitution, and the accessibility module chain, assembled into a single
// TranslationResult.
package translate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plainread/plainread/internal/accessibility"
	"github.com/plainread/plainread/internal/claims"
	"github.com/plainread/plainread/internal/jargon"
	"github.com/plainread/plainread/internal/readability"
	"github.com/plainread/plainread/internal/section"
	"github.com/plainread/plainread/internal/subject"
	"github.com/plainread/plainread/pkg/types"
)

// ErrInvalidInput is returned when there is no usable text to translate.
var ErrInvalidInput = errors.New("no usable text to translate")

// Options configures one translation request.
type Options struct {
	// SourceName labels the result (file name, URL, or "direct input").
	SourceName string

	// Domain overrides the subject classifier when non-empty. It must be a
	// known domain or "general".
	Domain types.Domain

	// Modules is the ordered list of accessibility module names to apply.
	// Order is preserved; unknown names become warnings.
	Modules []string

	// Dictionary is the term dictionary to rewrite with. Nil uses the
	// built-in tables.
	Dictionary *jargon.Dictionary
}

// Run translates raw document text. The pipeline order is fixed: classify
// (or override), estimate reading level, extract sections, rewrite
// statistical claims, substitute jargon, then run the module chain. The only
// error condition is invalid input; everything downstream degrades to
// defaults instead of failing.
func Run(text string, opts Options) (*types.TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	dict := opts.Dictionary
	if dict == nil {
		dict = jargon.Builtin()
	}

	sourceName := opts.SourceName
	if sourceName == "" {
		sourceName = "direct input"
	}

	// Stage 1: subject domain. Jargon substitution is domain-scoped, so
	// this always runs before any rewriting.
	domain := opts.Domain
	var scores map[types.Domain]int
	if domain == "" {
		domain, scores = subject.Classify(text)
	} else if !subject.Known(domain) {
		return nil, fmt.Errorf("%w: unknown subject domain %q", ErrInvalidInput, domain)
	}

	// Stage 2: reading level, from the raw text before any rewriting.
	level := readability.Estimate(text)

	// Stage 3: structural sections of the raw text.
	sections := section.Extract(text)

	// Stage 4: statistical claims, rewritten inline. The replacement spans
	// come back protected so stage 5 cannot re-translate them.
	claimed := claims.Rewrite(text, sections)

	// Stage 5: jargon substitution over the claim-rewritten text.
	rewriter := jargon.NewRewriter(dict, domain)
	simplified, subs := rewriter.Apply(claimed.Text, claimed.Protected)

	// Narrative assembly uses the raw text (patterns target the original
	// phrasing) plus the translated claims.
	findings := keyFindings(text, sections, claimed.Claims)
	methodology := methodologyNotes(text, sections)
	matters := whyItMatters(text, domain)

	// Stage 6: the accessibility module chain, in caller order.
	chain := accessibility.Run(simplified, opts.Modules, accessibility.Context{
		Domain:       domain,
		ReadingLevel: level,
		KeyFindings:  findings,
		SectionNames: section.Names(sections),
	})

	questions := questionsToAsk(domain, chain.Outputs)

	result := &types.TranslationResult{
		DocumentID:     uuid.New().String(),
		SourceName:     sourceName,
		Domain:         domain,
		DomainScores:   scores,
		ReadingLevel:   level,
		WordCount:      len(strings.Fields(text)),
		SimplifiedText: chain.Text,
		KeyFindings:    findings,
		Methodology:    methodology,
		WhyItMatters:   matters,
		Questions:      questions,
		Claims:         claimed.Claims,
		Substitutions:  subs,
		ModuleOutputs:  chain.Outputs,
		ModulesApplied: chain.Applied,
		Warnings:       chain.Warnings,
		Confidence:     confidence(sections, claimed.Claims, subs),
		CreatedAt:      time.Now().UTC(),
	}
	return result, nil
}
