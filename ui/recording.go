package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Value  string
}

type recording struct {
	entries []Entry
	answers []string
	next    int
	out     bytes.Buffer
}

// RecordingUI implements UI for tests. Output calls are kept in order and
// Ask/Confirm are answered from a script. Running out of scripted answers
// panics, the test script is wrong.
type RecordingUI struct {
	rec   *recording
	depth int
}

func NewRecordingUI(answers ...string) *RecordingUI {
	return &RecordingUI{rec: &recording{answers: answers}}
}

func (r *RecordingUI) add(method, value string) {
	r.rec.entries = append(r.rec.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) answer(caller string) string {
	if r.rec.next >= len(r.rec.answers) {
		panic(fmt.Sprintf("RecordingUI: %s called with no scripted answer left (%d used)", caller, r.rec.next))
	}
	a := r.rec.answers[r.rec.next]
	r.rec.next++
	return a
}

func (r *RecordingUI) Style(t StyledText) string { return t.Text }

func (r *RecordingUI) Info(format string, args ...any) {
	r.add("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.add("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.add("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.add("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.add("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.add("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.add("KeyValue", row[0]+": "+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.add("TableHeader", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.add("TableRow", strings.Join(row, " | "))
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.add("Spinner", msg)
	return func() {}
}

// Ask returns the next scripted answer. An answer the validator rejects
// panics instead of looping.
func (r *RecordingUI) Ask(validate func(string) error) string {
	a := r.answer("Ask")
	r.add("Ask", a)
	if validate != nil {
		if err := validate(a); err != nil {
			panic(fmt.Sprintf("RecordingUI: scripted answer %q rejected: %s", a, err))
		}
	}
	return a
}

func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.add("Confirm", prompt)
	switch strings.ToLower(strings.TrimSpace(r.answer("Confirm"))) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{rec: r.rec, depth: r.depth + 1}
}

func (r *RecordingUI) Writer() io.Writer {
	return &r.rec.out
}

// Entries returns every recorded call in order.
func (r *RecordingUI) Entries() []Entry {
	return r.rec.entries
}

// Messages returns the values recorded for method.
func (r *RecordingUI) Messages(method string) []string {
	var out []string
	for _, e := range r.rec.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, ignoring
// case.
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.rec.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

// Output is everything written to Writer.
func (r *RecordingUI) Output() string {
	return r.rec.out.String()
}

// Remaining is the number of scripted answers not consumed yet.
func (r *RecordingUI) Remaining() int {
	return len(r.rec.answers) - r.rec.next
}
