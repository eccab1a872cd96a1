// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"github.com/charmbracelet/glamour"

	"github.com/plainread/plainread/pkg/types"
)

// Terminal renders the Markdown report with terminal styling. If the styled
// renderer cannot be built or fails (no TTY, unknown terminal), the plain
// Markdown is returned so output is never lost.
func Terminal(res *types.TranslationResult) string {
	markdown := Markdown(res)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	styled, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return styled
}
