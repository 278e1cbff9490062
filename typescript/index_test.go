package typescript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateIndexFile(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateIndexFile(dir, []string{"Post", "User"}); err != nil {
		t.Fatalf("GenerateIndexFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.ts"))
	if err != nil {
		t.Fatalf("reading index.ts: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"PostAttributes", "PostInstance", "from './post';",
		"UserAttributes", "UserInstance", "from './user';",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in index.ts:\n%s", want, content)
		}
	}

	// Entities sorted for deterministic output
	if strings.Index(content, "PostAttributes") > strings.Index(content, "UserAttributes") {
		t.Error("expected Post exports before User exports")
	}
}

func TestGenerateIndexFile_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	if err := GenerateIndexFile(dirA, []string{"User", "Post"}); err != nil {
		t.Fatalf("GenerateIndexFile() error = %v", err)
	}
	if err := GenerateIndexFile(dirB, []string{"Post", "User"}); err != nil {
		t.Fatalf("GenerateIndexFile() error = %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dirA, "index.ts"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, "index.ts"))
	if err != nil {
		t.Fatal(err)
	}

	if string(a) != string(b) {
		t.Error("expected identical index.ts regardless of input order")
	}
}
