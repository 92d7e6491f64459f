package hints

import (
	"fmt"
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// Display writes hints after human-readable output. Structured formats are
// meant for other programs, so they get no hints.
func Display(w io.Writer, format output.Format, hints []*Hint) error {
	if len(hints) == 0 || !format.IsTabular() {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, hint := range hints {
		for _, line := range hint.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
