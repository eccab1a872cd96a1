// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/plainread/plainread/pkg/types"
)

// ExportEntry pairs an archive summary row with its full stored result.
type ExportEntry struct {
	Entry  `yaml:",inline"`
	Result types.TranslationResult `json:"result" yaml:"result"`
}

const exportLimit = 100000

// ExportYAML writes every archived translation to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every archived translation to path as JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	summaries, err := s.List(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(summaries))
	for i, sum := range summaries {
		res, err := s.Get(ctx, sum.ID)
		if err != nil {
			return nil, fmt.Errorf("loading %s for export: %w", sum.ID, err)
		}
		entries[i] = ExportEntry{Entry: sum, Result: *res}
	}
	return entries, nil
}
