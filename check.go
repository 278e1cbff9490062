package assocgen

import (
	"bytes"
	"os"
	"path/filepath"
)

// CheckResult holds the result of a staleness check against previously
// generated output.
type CheckResult struct {
	UpToDate    bool
	Differences []string // files that differ, are missing, or are unreadable
}

// CompareDirectories compares freshly generated files in tempDir with the
// existing files in outputDir. Used by the check subcommand to decide
// whether generated types are stale.
func CompareDirectories(tempDir, outputDir string) (*CheckResult, error) {
	var diffs []string

	err := filepath.Walk(tempDir, func(tempPath string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		relPath, err := filepath.Rel(tempDir, tempPath)
		if err != nil {
			return err
		}

		existingPath := filepath.Join(outputDir, relPath)
		different, err := filesAreDifferent(tempPath, existingPath)
		if err != nil {
			diffs = append(diffs, relPath+" (error: "+err.Error()+")")
		} else if different {
			diffs = append(diffs, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

// filesAreDifferent compares two files byte for byte. A missing existing
// file counts as different, not as an error.
func filesAreDifferent(file1, file2 string) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, err
	}

	content2, err := os.ReadFile(file2)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	return !bytes.Equal(content1, content2), nil
}
