package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes document to path, creating any missing parent directories
// and replacing whatever was there before.
//
// Reports list file paths and may quote secrets found in source, so the
// file is created readable by the owner only.
func Save(path string, document []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, document, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
