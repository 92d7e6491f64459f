// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across the menu and
// the one-shot commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added books, deleted books, saved catalog.
	Success = "✓"

	// Error represents failures.
	// Used for: I/O errors, invalid menu selections.
	Error = "✗"

	// Warning represents non-critical issues.
	// Used for: skipped catalog lines, duplicate isbn rejections.
	Warning = "!"

	// Info represents neutral notices.
	// Used for: empty catalog, no search results, record not found.
	Info = "i"

	// Book prefixes catalog headings.
	Book = "📚"

	// Hint prefixes suggested next steps.
	Hint = "💡"
)
