// Package suggest provides best-effort command completion for
// interactive front-ends. The interpreter never depends on anything in
// this package; a failed or empty suggestion costs the user nothing but
// the hint.
package suggest

import (
	"context"
	"log/slog"
)

// Suggester proposes a complete command for a partially typed one. An
// empty string means "no suggestion"; errors are soft.
type Suggester interface {
	Suggest(ctx context.Context, partial string) (string, error)
}

// Chain tries each suggester in order and returns the first non-empty
// answer. Failures are logged and skipped.
type Chain []Suggester

func (c Chain) Suggest(ctx context.Context, partial string) (string, error) {
	for _, s := range c {
		suggestion, err := s.Suggest(ctx, partial)
		if err != nil {
			slog.Debug("suggester failed, trying next", "error", err)
			continue
		}
		if suggestion != "" {
			return suggestion, nil
		}
	}
	return "", nil
}
