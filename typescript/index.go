package typescript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/assocgen/errors"
)

// GenerateIndexFile creates a barrel export file (index.ts) re-exporting
// the attributes and instance types of every generated entity.
func GenerateIndexFile(outputDir string, entities []string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("/* eslint-disable */\n")
	sb.WriteString("// Auto-generated barrel export - re-exports all generated model types\n")
	sb.WriteString("// This file is regenerated on every run\n\n")

	// Sort entities for deterministic output
	sorted := make([]string, len(entities))
	copy(sorted, entities)
	sort.Strings(sorted)

	for _, entity := range sorted {
		file := strings.TrimSuffix(FileName(entity), ".ts")
		sb.WriteString(fmt.Sprintf("// Types from %s\n", entity))
		sb.WriteString("export type {\n")
		sb.WriteString(fmt.Sprintf("  %s,\n", AttributesName(entity)))
		sb.WriteString(fmt.Sprintf("  %s,\n", InstanceName(entity)))
		sb.WriteString(fmt.Sprintf("} from './%s';\n\n", file))
	}

	indexPath := filepath.Join(outputDir, "index.ts")
	if err := os.WriteFile(indexPath, []byte(sb.String()), 0644); err != nil {
		return errors.Wrap(err, "failed to write index.ts")
	}

	return nil
}
