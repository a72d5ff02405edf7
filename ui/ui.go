package ui

import (
	"encoding/json"
	"io"
)

// Severity is the visual weight of a piece of text. Terminal output maps it
// to a colour; JSON and tests see plain text.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarn
	SeverityError
	SeverityCritical
)

// StyledText is a string with a Severity. It marshals to JSON as the bare
// string.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is every terminal interaction of the auditor CLI. TerminalUI is used
// in production and RecordingUI in tests.
//
// Child UIs returned by Indent share the parent's writer and input, so a
// nested prompt consumes input in order.
type UI interface {
	// Style colours t by its severity. Without colours it returns t.Text.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error prints in red. It does not exit.
	Error(format string, args ...any)
	// Critical is for findings the user must read, rendered bold.
	Critical(format string, args ...any)

	// Section prints a titled separator, e.g. "===== Security Analysis =====".
	Section(title string)
	// List prints one "- item" line per item.
	List(items []string)
	// KeyValue prints label/value pairs with the values aligned.
	KeyValue(rows [][2]string)
	// Table prints a bordered table. Nil headers omit the header row.
	Table(headers []string, rows [][]string)
	// TableWithGroups is Table with a divider between groups of rows.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner shows msg until the returned func is called.
	Spinner(msg string) func()

	// Interpret echoes how the last input was understood, as "→ value".
	Interpret(value string)

	// Ask reads a line after a "> " prompt, repeating until validate
	// accepts it. A nil validate accepts anything.
	Ask(validate func(string) error) string
	Confirm(prompt string, defaultYes bool) bool
	// Choose returns the 0-based index of the selected option.
	Choose(prompt string, options []string) int

	Indent() UI
	// Writer indents every line written to it at the current level.
	Writer() io.Writer
}
