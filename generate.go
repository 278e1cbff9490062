// Package assocgen generates TypeScript type declarations for ORM model
// entities and their association accessor methods from a declarative
// schema.
//
// A run is a pure function from (entities, associations, overrides) to a
// set of per-entity declaration blocks: the schema is validated and
// resolved, then each entity's block is rendered from its own attributes
// plus the accessor methods its declared associations imply. Any schema or
// generation error aborts the whole run; partially-correct generated types
// are worse than none.
package assocgen

import (
	"os"
	"path/filepath"

	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/logger"
	"github.com/teranos/assocgen/schema"
	"github.com/teranos/assocgen/typescript"
)

// Generate runs the full pipeline: validate, resolve, emit one declaration
// block per entity in declaration order. A nil override map falls back to
// the overrides declared in the schema document itself.
func Generate(s *schema.Schema, ov schema.Overrides) (*Result, error) {
	log := logger.ComponentLogger("driver")

	if ov == nil {
		ov = s.Overrides
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	resolved, err := s.Resolve()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Blocks: make(map[string]string, len(resolved.Entities)),
		Order:  make([]string, 0, len(resolved.Entities)),
	}

	for _, re := range resolved.Entities {
		block, warnings, err := typescript.GenerateBlock(re, resolved, ov)
		if err != nil {
			return nil, err
		}

		log.Debugw("generated declaration block",
			logger.FieldEntity, re.Name,
			logger.FieldCount, len(re.Owned))

		result.Blocks[re.Name] = block
		result.Order = append(result.Order, re.Name)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

// GenerateFromFile loads, validates, and generates from a YAML schema file.
func GenerateFromFile(path string) (*Result, error) {
	s, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return Generate(s, nil)
}

// WriteFiles writes one <entity>.ts file per declaration block into
// outputDir, plus an index.ts barrel export. The directory is created if
// missing. Files are only written from a complete Result, so a failed run
// never leaves partial output behind.
func WriteFiles(result *Result, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outputDir)
	}

	for _, entity := range result.Order {
		path := filepath.Join(outputDir, typescript.FileName(entity))
		if err := os.WriteFile(path, []byte(result.Blocks[entity]), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
	}

	return typescript.GenerateIndexFile(outputDir, result.Order)
}
