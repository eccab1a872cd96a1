// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that fetch remote
// sources.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "plainread/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// IngestConfig holds settings for turning files and URLs into raw text.
type IngestConfig struct {
	HTTPConfig `yaml:",inline"`

	// MinLength is the minimum acceptable text length in characters
	// (default 200). Shorter inputs are rejected as invalid.
	MinLength int `json:"min_length" yaml:"min_length"`

	// MaxRetries is the number of retry attempts for failed URL fetches
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// JargonConfig holds settings for the term dictionary.
type JargonConfig struct {
	// OverlayFiles lists YAML dictionary files merged over the built-in
	// tables at load time. Later files win on conflicts.
	OverlayFiles []string `json:"overlay_files" yaml:"overlay_files"`
}

// ModulesConfig holds settings for the accessibility module chain.
type ModulesConfig struct {
	// Defaults lists the module names applied when the caller requests none.
	Defaults []string `json:"defaults" yaml:"defaults"`
}

// ReportConfig holds settings for rendered report output.
type ReportConfig struct {
	// OutputDir is the directory reports are written to (default
	// "translations").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ArchiveConfig holds settings for the translation archive.
type ArchiveConfig struct {
	// DatabasePath is the SQLite database file path (default
	// "translations/archive.db").
	DatabasePath string `json:"database_path" yaml:"database_path"`

	// MaxResults is the default maximum number of list/search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all component configurations for the tool.
type PipelineConfig struct {
	Ingest  IngestConfig  `json:"ingest" yaml:"ingest"`
	Jargon  JargonConfig  `json:"jargon" yaml:"jargon"`
	Modules ModulesConfig `json:"modules" yaml:"modules"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}
