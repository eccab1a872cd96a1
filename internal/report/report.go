// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a TranslationResult for people: Markdown, a
// self-contained HTML page, JSON, and styled terminal output.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// Format identifies a report output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatTerm     Format = "term"
)

// DefaultOutputDir is where reports land when no directory is configured.
const DefaultOutputDir = "translations"

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "term", "terminal":
		return FormatTerm, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Render produces the report in the requested format.
func Render(res *types.TranslationResult, format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(res), nil
	case FormatHTML:
		return HTML(res)
	case FormatJSON:
		return JSON(res)
	case FormatTerm:
		return Terminal(res), nil
	}
	return "", fmt.Errorf("unknown report format %q", format)
}

// Save renders the report and writes it under cfg.OutputDir as
// <slug>-<timestamp>.<ext>, creating the directory if needed. Terminal
// output is saved in its Markdown form. Returns the written path.
func Save(res *types.TranslationResult, format Format, cfg types.ReportConfig) (string, error) {
	saveFormat := format
	if saveFormat == FormatTerm {
		saveFormat = FormatMarkdown
	}
	content, err := Render(res, saveFormat)
	if err != nil {
		return "", err
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", slug(res.SourceName), res.CreatedAt.Format("20060102-150405"), extension(saveFormat))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func extension(format Format) string {
	switch format {
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".md"
	}
}

// slug reduces a source name to a filesystem-safe stem: lowercase
// alphanumerics with single dashes between runs of anything else.
func slug(name string) string {
	var b strings.Builder
	dash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "translation"
	}
	if len(s) > 60 {
		s = strings.Trim(s[:60], "-")
	}
	return s
}

// domainLabel renders a domain for display ("social_science" -> "Social science").
func domainLabel(d types.Domain) string {
	s := strings.ReplaceAll(string(d), "_", " ")
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func modulesLine(applied []string) string {
	if len(applied) == 0 {
		return "none"
	}
	return strings.Join(applied, ", ")
}
