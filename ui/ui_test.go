package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*TerminalUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTerminalUIWith(out, strings.NewReader(input), false), out
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\ny\n", false, true},
	}
	for _, tt := range tests {
		u, _ := newTestTerminal(tt.input)
		assert.Equal(t, tt.want, u.Confirm("go?", tt.defaultYes), "input %q", tt.input)
	}
}

func TestTerminalAskReturnsOnClosedInput(t *testing.T) {
	u, _ := newTestTerminal("")
	got := u.Ask(func(s string) error {
		if s == "" {
			return assert.AnError
		}
		return nil
	})
	assert.Equal(t, "", got)
}

func TestTerminalIndentAndKeyValue(t *testing.T) {
	u, out := newTestTerminal("")
	u.Indent().KeyValue([][2]string{
		{"Name", "hello"},
		{"Address", "xch1abc"},
	})
	assert.Equal(t, "  Name     hello\n  Address  xch1abc\n", out.String())
}

func TestTerminalWriterIndents(t *testing.T) {
	u, out := newTestTerminal("")
	w := u.Indent().Writer()
	_, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, "  one\n  two\n", out.String())
}

func TestTerminalTableAlignsColumns(t *testing.T) {
	u, out := newTestTerminal("")
	u.Table([]string{"Name", "Address"}, [][]string{
		{"hello", "a"},
		{"x", "abcdef"},
	})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	width := runewidth.StringWidth(ansi.Strip(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, runewidth.StringWidth(ansi.Strip(l)), l)
	}
	assert.Contains(t, lines[1], "Name ")
	assert.Contains(t, lines[3], "hello")
}

func TestSectionLineIsCentred(t *testing.T) {
	line := sectionLine("Namesdao")
	assert.Len(t, line, sectionWidth)
	assert.True(t, strings.HasPrefix(line, "===="))
	assert.Contains(t, line, " Namesdao ")
}

func TestStyledTextMarshalsAsPlainString(t *testing.T) {
	b, err := json.Marshal(Critical("xch1"))
	require.NoError(t, err)
	assert.Equal(t, `"xch1"`, string(b))
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI("yes", "", "n")
	child := r.Indent()
	assert.True(t, child.Confirm("first", false))
	assert.True(t, r.Confirm("second", true))
	assert.False(t, r.Confirm("third", true))
	assert.Zero(t, r.Remaining())

	r.Info("resolved %s", "hello")
	r.KeyValue([][2]string{{"Fee", "1 mojos"}})
	assert.True(t, r.HasMessage("RESOLVED hello"))
	assert.Equal(t, []string{"Fee: 1 mojos"}, r.Messages("KeyValue"))
	assert.Panics(t, func() { r.Ask(nil) })
}
