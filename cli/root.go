// Package cli implements the assocgen command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/teranos/assocgen/config"
	"github.com/teranos/assocgen/logger"
)

var (
	jsonLogs bool

	// cfg is loaded once before any command runs; flag defaults fall back
	// to it when the user passes nothing.
	cfg *config.Config
)

// RootCmd is the assocgen root command
var RootCmd = &cobra.Command{
	Use:   "assocgen",
	Short: "Generate TypeScript types for ORM model associations",
	Long: `assocgen - TypeScript declaration generator for ORM model associations.

Reads a declarative YAML schema of entities and associations and generates,
for each entity, an attributes interface plus an instance interface carrying
every accessor method its associations imply (get/set/add/remove/has/count/
create families per association kind).

Available commands:
  generate - Generate declaration files from a schema
  check    - Check whether generated files are up to date

Examples:
  assocgen generate -s schema.yaml             # Print declarations to stdout
  assocgen generate -s schema.yaml -o src/types # Write one .ts file per entity
  assocgen generate -s schema.yaml -o src/types --watch
  assocgen check -s schema.yaml -o src/types   # Exit 1 when output is stale

Exit codes:
  0 - Success (check: output is up to date)
  1 - check: output is out of date
  2 - Schema or generation error`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		return logger.InitializeWithVerbosity(jsonLogs || cfg.JSONLogs, verbosity)
	},
}

func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as structured JSON")

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(CheckCmd)
}

// schemaPath returns the schema path to use: the flag value when set,
// else the configured default.
func schemaPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		return cfg.Schema
	}
	return "schema.yaml"
}

// outputDir returns the output directory to use: the flag value when set,
// else the configured default. Empty means stdout.
func outputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		return cfg.Output
	}
	return ""
}
