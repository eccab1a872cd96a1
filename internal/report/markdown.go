// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// Markdown renders the canonical report layout: header, at-a-glance stats,
// the narrative blocks, the simplified text, per-module extras, and a
// glossary of replaced terms.
func Markdown(res *types.TranslationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Plain-language translation: %s\n\n", res.SourceName)

	b.WriteString("## At a glance\n\n")
	fmt.Fprintf(&b, "- **Subject area:** %s\n", domainLabel(res.Domain))
	fmt.Fprintf(&b, "- **Original reading level:** %s\n", res.ReadingLevel)
	fmt.Fprintf(&b, "- **Word count:** %d\n", res.WordCount)
	fmt.Fprintf(&b, "- **Modules applied:** %s\n", modulesLine(res.ModulesApplied))
	fmt.Fprintf(&b, "- **Translation confidence:** %.0f%%\n\n", res.Confidence*100)

	writeBulletSection(&b, "Key findings", res.KeyFindings)
	writeBulletSection(&b, "Why this matters", res.WhyItMatters)
	writeBulletSection(&b, "How the study was done", res.Methodology)
	writeBulletSection(&b, "Questions worth asking", res.Questions)

	if len(res.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range res.Warnings {
			if w.Module != "" {
				fmt.Fprintf(&b, "- %s: %s\n", w.Module, w.Message)
			} else {
				fmt.Fprintf(&b, "- %s\n", w.Message)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Simplified text\n\n%s\n\n", strings.TrimSpace(res.SimplifiedText))

	for _, mo := range res.ModuleOutputs {
		if mo.Aux.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "## Extras from the %s module\n\n", mo.Module)
		writeSubList(&b, "Visual aids", mo.Aux.VisualAids)
		writeSubList(&b, "Things to try", mo.Aux.ActionItems)
		writeSubList(&b, "Questions", mo.Aux.Questions)
	}

	if len(res.Substitutions) > 0 {
		b.WriteString("## Glossary of replaced terms\n\n")
		b.WriteString("| Term | Plain language | Times replaced |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, sub := range res.Substitutions {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", sub.Term, sub.Replacement, sub.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\nTranslated on %s.\n", res.CreatedAt.Format("January 2, 2006"))
	return b.String()
}

func writeBulletSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeSubList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
