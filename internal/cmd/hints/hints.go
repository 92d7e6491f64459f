// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"strings"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{
		Message: message,
		Command: command,
	}
}

// WithCommand adds a command to the hint.
func (h *Hint) WithCommand(command string) *Hint {
	h.Command = command
	return h
}

// Lines returns the hint as printable lines.
func (h *Hint) Lines() []string {
	lines := []string{fmt.Sprintf("%s %s", emoji.Hint, h.Message)}
	if h.Command != "" {
		lines = append(lines, fmt.Sprintf("   Run: %s", h.Command))
	}
	return lines
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	return strings.Join(h.Lines(), "\n")
}

// EmptyCatalog suggests how to get books into an empty catalog.
func EmptyCatalog() []*Hint {
	return []*Hint{
		NewCommand("Add your first book", "bookshelf add <title> <author> <isbn>"),
		NewCommand("Or import a JSON or YAML list", "bookshelf import <file>"),
	}
}

// NoMatches suggests what to try after a search found nothing.
func NoMatches(keyword string) []*Hint {
	if strings.TrimSpace(keyword) != keyword {
		return []*Hint{
			New("The keyword has leading or trailing spaces, which must match exactly"),
		}
	}
	return []*Hint{
		NewCommand("See every book in the catalog", "bookshelf list"),
	}
}
