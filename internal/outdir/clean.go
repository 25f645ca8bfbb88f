package outdir

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
)

// Clean removes the shared root and everything under it. A root that does
// not exist is already clean.
func Clean(ctx context.Context, root Root) error {
	logger := ctxlog.FromContext(ctx)

	if root.IsZero() {
		return errors.New("refusing to clean an unresolved output root")
	}

	if _, err := os.Stat(root.Path()); errors.Is(err, os.ErrNotExist) {
		logger.Debug("Shared output root does not exist, nothing to clean.", "path", root.Path())
		return nil
	}

	if err := os.RemoveAll(root.Path()); err != nil {
		return fmt.Errorf("failed to remove shared output root %s: %w", root.Path(), err)
	}
	logger.Info("🧹 Shared output root removed.", "path", root.Path())
	return nil
}
