package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/assocgen"
	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/logger"
	"github.com/teranos/assocgen/schema"
)

var (
	generateSchema    string
	generateOutput    string
	generateOverrides string
	generateWatch     bool
)

// GenerateCmd generates declaration files from a schema
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate declaration files from a schema",
	Long: `Generate TypeScript declaration files from a YAML schema.

Without --output the declaration blocks are printed to stdout. With
--output one <entity>.ts file is written per entity, plus an index.ts
barrel export.

Heuristically pluralized names are reported as warnings; silence them with
an overrides map (in the schema file under 'overrides:' or via
--overrides).

Examples:
  assocgen generate -s schema.yaml
  assocgen generate -s schema.yaml -o src/types/generated
  assocgen generate -s schema.yaml -o src/types/generated --watch
  assocgen generate -s schema.yaml --overrides naming.yaml`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateSchema, "schema", "s", "", "Schema file path (default: from config, else schema.yaml)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: stdout)")
	GenerateCmd.Flags().StringVar(&generateOverrides, "overrides", "", "YAML file mapping entity and alias to explicit method-name forms")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the schema file and regenerate on change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := schemaPath(generateSchema)
	out := outputDir(generateOutput)

	overrides, err := loadOverrides(generateOverrides)
	if err != nil {
		return err
	}

	run := func(s *schema.Schema) error {
		return generateOnce(s, overrides, out)
	}

	s, err := schema.Load(path)
	if err != nil {
		return err
	}
	if err := run(s); err != nil {
		return err
	}

	if !generateWatch {
		return nil
	}

	if out == "" {
		return errors.New("--watch requires --output")
	}
	return watchSchema(path, run)
}

// generateOnce runs one full generation pass and writes or prints output.
func generateOnce(s *schema.Schema, overrides schema.Overrides, out string) error {
	result, err := assocgen.Generate(s, overrides)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warnw("heuristic pluralization",
			logger.FieldEntity, w.Entity,
			logger.FieldAlias, w.Alias,
			"derived", w.Derived)
	}

	if out == "" {
		for _, entity := range result.Order {
			fmt.Println(result.Blocks[entity])
		}
		return nil
	}

	if err := assocgen.WriteFiles(result, out); err != nil {
		return err
	}

	fmt.Printf("✓ Generated %d declaration files in %s\n", len(result.Order), out)
	return nil
}

// watchSchema blocks, regenerating on every schema change until interrupted.
func watchSchema(path string, run func(*schema.Schema) error) error {
	watcher, err := schema.NewWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnReload(func(s *schema.Schema) error {
		if err := run(s); err != nil {
			// Keep watching; a broken edit should not kill the loop
			logger.Errorw("regeneration failed",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
		return nil
	})
	watcher.Start()

	fmt.Printf("Watching %s for changes (ctrl-c to stop)\n", path)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	return nil
}

// loadOverrides reads an overrides map from a YAML file. An empty path
// yields nil, letting the schema document's own overrides apply.
func loadOverrides(path string) (schema.Overrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading overrides file %s", path)
	}

	var overrides schema.Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Wrapf(err, "parsing overrides file %s", path)
	}
	return overrides, nil
}
