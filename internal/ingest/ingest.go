// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns files and URLs into raw text for the translation
// pipeline. Each source kind has an adapter; dispatch is by file extension
// or explicit kind.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/plainread/plainread/pkg/types"
)

// ErrInvalidInput marks input that cannot enter the pipeline: missing,
// undecodable, or shorter than the configured minimum.
var ErrInvalidInput = errors.New("invalid input")

// DefaultMinLength is the minimum text length in bytes when the config
// does not set one. Shorter inputs are almost never real documents.
const DefaultMinLength = 200

// Source is one ingested document ready for translation.
type Source struct {
	// Name labels the source: base file name, URL, or caller-given label.
	Name string

	// Kind records which adapter produced the text.
	Kind types.SourceKind

	// Text is the extracted raw text.
	Text string
}

// FromFile reads and extracts text from a file, dispatching on extension:
// .txt, .md/.markdown, .html/.htm, .docx. Unknown extensions are treated
// as plain text.
func FromFile(path string, cfg types.IngestConfig) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	var src Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractHTML(string(data))
		if err != nil {
			return Source{}, fmt.Errorf("extracting %s: %w", name, err)
		}
		src = Source{Name: name, Kind: types.SourceHTML, Text: text}
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return Source{}, fmt.Errorf("extracting %s: %w", name, err)
		}
		src = Source{Name: name, Kind: types.SourceDOCX, Text: text}
	case ".md", ".markdown":
		src = Source{Name: name, Kind: types.SourceMarkdown, Text: string(data)}
	default:
		src = Source{Name: name, Kind: types.SourceText, Text: string(data)}
	}

	if err := validate(src.Text, cfg); err != nil {
		return Source{}, fmt.Errorf("%s: %w", name, err)
	}
	return src, nil
}

// FromText wraps caller-provided text as a source.
func FromText(label, text string, cfg types.IngestConfig) (Source, error) {
	if label == "" {
		label = "direct input"
	}
	if err := validate(text, cfg); err != nil {
		return Source{}, err
	}
	return Source{Name: label, Kind: types.SourceText, Text: text}, nil
}

// validate rejects undecodable or too-short text.
func validate(text string, cfg types.IngestConfig) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: not valid UTF-8 text", ErrInvalidInput)
	}
	minLen := cfg.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if len(strings.TrimSpace(text)) < minLen {
		return fmt.Errorf("%w: text shorter than %d characters", ErrInvalidInput, minLen)
	}
	return nil
}
