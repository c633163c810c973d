package out

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "folio/internal/platform/errors"
)

// DirWriter writes export files below a root directory.
type DirWriter struct {
	root string
}

func NewDirWriter(root string) DirWriter { return DirWriter{root: root} }

func (w DirWriter) WriteFile(relPath string, content []byte) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: export path %q escapes %s", apperrors.ErrInvalidInput, relPath, w.root)
	}
	path := filepath.Join(w.root, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
