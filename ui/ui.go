package ui

import (
	"encoding/json"
	"io"
)

// Severity is the visual weight of an inline value.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarn
	SeverityError
	SeverityCritical
)

// StyledText is a value annotated with a Severity, rendered by UI.Style.
// It marshals to JSON as the bare text.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

func Critical(text string) StyledText {
	return StyledText{Text: text, Severity: SeverityCritical}
}

func Warning(text string) StyledText {
	return StyledText{Text: text, Severity: SeverityWarn}
}

// UI is every interaction the namesdao commands have with the person at the
// terminal. TerminalUI talks to stdin/stdout, RecordingUI serves scripted
// answers to tests.
//
// Children returned by Indent share the parent's reader and writer, so
// prompts issued from a nested scope consume the same input stream.
type UI interface {
	// Style renders t with its severity colour. Without colours the plain
	// text is returned.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error reports a failure. It does not exit.
	Error(format string, args ...any)
	// Critical is for values the user must check before money moves, the
	// destination address and the amounts.
	Critical(format string, args ...any)

	// Section prints a title between "=" bars.
	Section(title string)

	// KeyValue prints label/value rows with values aligned on one column.
	KeyValue(rows [][2]string)

	// Table prints a bordered table. A nil header omits the header row.
	Table(headers []string, rows [][]string)

	// Spinner shows msg while work is in progress. Call the returned func
	// to clear it.
	Spinner(msg string) func()

	// Ask prints a "> " prompt and reads one line, looping until validate
	// accepts it. A nil validate accepts anything.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question, an empty answer picks defaultYes.
	Confirm(prompt string, defaultYes bool) bool

	Indent() UI

	// Writer prefixes every line written to it with the current indent.
	Writer() io.Writer
}
