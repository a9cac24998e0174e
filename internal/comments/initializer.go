// Package comments ensures the NDC/GPI comments table exists and reports the
// outcome.
package comments

import (
	"context"
	"fmt"
	"io"

	"github.com/hetulpatel/ndc-comments/internal/storage/sqlite"
)

const (
	SuccessMessage = "✅ 'comments' table successfully created."
	FailureMessage = "❌ Failed to create 'comments' table."
)

// Schema is the storage surface the initializer needs.
type Schema interface {
	EnsureCommentsTable(ctx context.Context) error
	TableExists(ctx context.Context, name string) (bool, error)
}

// Initialize creates the comments table if needed, verifies it through the
// catalog and writes exactly one report line to out. A table missing after
// creation is reported on out and returned as false, not as an error.
func Initialize(ctx context.Context, schema Schema, out io.Writer) (bool, error) {
	if err := schema.EnsureCommentsTable(ctx); err != nil {
		return false, fmt.Errorf("ensure comments table: %w", err)
	}

	ok, err := schema.TableExists(ctx, sqlite.CommentsTable)
	if err != nil {
		return false, fmt.Errorf("verify comments table: %w", err)
	}

	msg := FailureMessage
	if ok {
		msg = SuccessMessage
	}
	if _, err := fmt.Fprintln(out, msg); err != nil {
		return ok, fmt.Errorf("write report: %w", err)
	}
	return ok, nil
}
