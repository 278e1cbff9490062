package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/assocgen"
	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/schema"
)

var (
	checkSchema string
	checkOutput string
)

// ErrStale is returned by check when generated files do not match the
// schema. The main entry point maps it to exit code 1.
var ErrStale = errors.New("generated files are out of date - run 'assocgen generate' to update")

// IsStale reports whether an error is the staleness error from check.
func IsStale(err error) bool {
	return err != nil && errors.Is(err, ErrStale)
}

// CheckCmd checks if generated files are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated files are up to date",
	Long: `Check if generated declaration files match the current schema.

This command generates declarations to a temporary directory and compares
them with the existing output directory.

Exit codes:
  0 - Files are up to date
  1 - Files are out of date (differing files listed)
  2 - Error during check

Examples:
  assocgen check -s schema.yaml -o src/types/generated`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkSchema, "schema", "s", "", "Schema file path (default: from config, else schema.yaml)")
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output directory to compare against (default: from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := schemaPath(checkSchema)
	out := outputDir(checkOutput)
	if out == "" {
		return errors.New("check requires an output directory (--output or config)")
	}

	fmt.Println("Checking generated files...")

	tempDir, err := os.MkdirTemp("", "assocgen-check-*")
	if err != nil {
		return errors.Wrap(err, "creating temp directory")
	}
	defer os.RemoveAll(tempDir)

	s, err := schema.Load(path)
	if err != nil {
		return err
	}

	result, err := assocgen.Generate(s, nil)
	if err != nil {
		return err
	}
	if err := assocgen.WriteFiles(result, tempDir); err != nil {
		return err
	}

	check, err := assocgen.CompareDirectories(tempDir, out)
	if err != nil {
		return errors.Wrap(err, "comparing directories")
	}

	if check.UpToDate {
		fmt.Println("✓ Generated files are up to date")
		return nil
	}

	fmt.Println("✗ Generated files are out of date.")
	for _, file := range check.Differences {
		fmt.Printf("  - %s\n", file)
	}

	return ErrStale
}
