// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/wizzomafizzo/shelly/internal/logging"
)

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// Copy puts text on the clipboard. Failures are logged and returned so the
// caller can fall back to printing the text.
func Copy(ctx context.Context, text string) error {
	if err := writeAll(text); err != nil {
		logging.Get(ctx).Warn().Err(err).Int("length", len(text)).Msg("Failed to copy to clipboard")
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	logging.Get(ctx).Debug().Int("length", len(text)).Msg("Copied to clipboard")
	return nil
}
