// Package writer provides idempotent file output: a write is skipped when the
// target already holds byte-identical content, so file timestamps stay stable
// across repeated no-op runs and downstream build tools see no churn.
package writer

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteIfChanged writes content to path, creating parent directories as
// needed. It returns true when the file was actually written and false when
// the existing content already matched.
func WriteIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "read existing file %q", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrapf(err, "create directory for %q", path)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, errors.Wrapf(err, "write %q", path)
	}

	return true, nil
}
