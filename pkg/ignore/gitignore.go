package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// LoadGitIgnore parses root/.gitignore. It returns a nil Matcher and no
// error when the file does not exist. The matcher expects absolute paths.
func LoadGitIgnore(root string, logger *zap.Logger) (Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("No .gitignore found", zap.String("root", root))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	m, err := gitignore.NewGitIgnore(p, root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p, err)
	}
	logger.Debug("Loaded .gitignore", zap.String("file", p))
	return m, nil
}
