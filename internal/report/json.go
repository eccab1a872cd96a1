// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"

	"github.com/plainread/plainread/pkg/types"
)

// JSON renders the result as indented JSON. Field order follows the
// TranslationResult struct tags, so output is stable across runs.
func JSON(res *types.TranslationResult) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data) + "\n", nil
}
