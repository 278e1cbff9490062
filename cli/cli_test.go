package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/assocgen/schema"
)

const cliSchema = `
entities:
  - name: User
    attributes:
      - name: id
        type: number
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: belongs_to
    source: Post
    target: User
    alias: author
`

func writeSchema(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cliSchema), 0644))
	return path
}

func resetFlags() {
	generateSchema = ""
	generateOutput = ""
	generateOverrides = ""
	generateWatch = false
	checkSchema = ""
	checkOutput = ""
}

func TestGenerateCommand_WritesFiles(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	schemaFile := writeSchema(t, dir)
	out := filepath.Join(dir, "out")

	RootCmd.SetArgs([]string{"generate", "-s", schemaFile, "-o", out})
	require.NoError(t, RootCmd.Execute())

	for _, f := range []string{"user.ts", "post.ts", "index.ts"} {
		_, err := os.Stat(filepath.Join(out, f))
		assert.NoError(t, err, "expected %s", f)
	}
}

func TestGenerateCommand_SchemaError(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entities:
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: belongs_to
    source: Post
    target: User
`), 0644))
	out := filepath.Join(dir, "out")

	RootCmd.SetArgs([]string{"generate", "-s", path, "-o", out})
	err := RootCmd.Execute()
	require.Error(t, err)

	// No partial output
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed run must not create output")
}

func TestCheckCommand(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	schemaFile := writeSchema(t, dir)
	out := filepath.Join(dir, "out")

	RootCmd.SetArgs([]string{"generate", "-s", schemaFile, "-o", out})
	require.NoError(t, RootCmd.Execute())

	resetFlags()
	RootCmd.SetArgs([]string{"check", "-s", schemaFile, "-o", out})
	require.NoError(t, RootCmd.Execute())

	// Stale a generated file; check must fail with the staleness error
	require.NoError(t, os.WriteFile(filepath.Join(out, "post.ts"), []byte("// stale\n"), 0644))

	resetFlags()
	RootCmd.SetArgs([]string{"check", "-s", schemaFile, "-o", out})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.True(t, IsStale(err))
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "naming.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
Post:
  upvoters:
    singular: upvoter
    plural: upvoters
`), 0644))

	overrides, err := loadOverrides(path)
	require.NoError(t, err)

	forms, ok := overrides.Lookup("Post", "upvoters")
	require.True(t, ok)
	assert.Equal(t, schema.NameForms{Singular: "upvoter", Plural: "upvoters"}, forms)
}

func TestLoadOverrides_Empty(t *testing.T) {
	overrides, err := loadOverrides("")
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestLoadOverrides_Missing(t *testing.T) {
	_, err := loadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
