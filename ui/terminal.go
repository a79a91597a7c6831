package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 60
	promptPrefix = "> "
)

// TerminalUI writes to stdout and reads answers from stdin. Colours are on
// only when stdout is a terminal.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	tty         bool
}

// NewTerminalUI writes to stdout and reads answers from stdin.
func NewTerminalUI() *TerminalUI {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return NewTerminalUIWith(os.Stdout, os.Stdin, tty)
}

// NewTerminalUIWith builds a TerminalUI over arbitrary streams. Spinners and
// colours are only used when tty is true.
func NewTerminalUIWith(out io.Writer, in io.Reader, tty bool) *TerminalUI {
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(tty),
		tty: tty,
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) println(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

// Style renders t with its severity colour when output is a terminal and
// returns the plain text otherwise.
func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	}
	return t.Text
}

// Info prints a plain line at the current indentation.
func (u *TerminalUI) Info(format string, args ...any) {
	u.println(fmt.Sprintf(format, args...))
}

// Success prints a green line.
func (u *TerminalUI) Success(format string, args ...any) {
	u.println(u.au.Green(fmt.Sprintf(format, args...)).String())
}

// Warn prints a yellow line. Warnings never stop the command.
func (u *TerminalUI) Warn(format string, args ...any) {
	u.println(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

// Error prints a red line.
func (u *TerminalUI) Error(format string, args ...any) {
	u.println(u.au.Red(fmt.Sprintf(format, args...)).String())
}

// Critical prints a bold line, used for what the user must check before
// confirming.
func (u *TerminalUI) Critical(format string, args ...any) {
	u.println(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

// Section prints title centred in a rule of sectionWidth columns.
func (u *TerminalUI) Section(title string) {
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), sectionLine(title))
}

func sectionLine(title string) string {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	return strings.Repeat("=", bars/2) + titled + strings.Repeat("=", bars-bars/2)
}

// Ask reads one line from input. When validate is not nil the question is
// repeated until it returns nil. At end of input Ask returns whatever was
// read.
func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, err := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil {
			return input
		}
		verr := validate(input)
		if verr == nil {
			return input
		}
		if err != nil {
			// stdin is closed, there is nobody to ask again
			return input
		}
		u.println(u.au.Red(verr.Error()).String())
	}
}

// Confirm asks a yes or no question. An empty answer takes defaultYes.
func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	u.Info("%s %s", prompt, options)
	answer := strings.ToLower(strings.TrimSpace(u.Ask(func(s string) error {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "y", "yes", "n", "no":
			return nil
		}
		return fmt.Errorf("please answer y or n")
	})))
	switch answer {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}

// KeyValue prints rows as two columns, keys padded to one width.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > width {
			width = w
		}
	}
	for _, r := range rows {
		u.println(runewidth.FillRight(r[0], width) + "  " + r[1])
	}
}

// Table draws box borders with lipgloss. Cell widths ignore ANSI sequences
// so values passed through Style stay aligned.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return
	}

	visible := func(s string) int { return runewidth.StringWidth(ansi.Strip(s)) }
	widths := make([]int, ncols)
	for _, r := range append([][]string{headers}, rows...) {
		for i, cell := range r {
			if w := visible(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	rule := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return style.Render(left + strings.Join(parts, mid) + right)
	}
	line := func(cells []string) string {
		parts := make([]string, ncols)
		for i := range parts {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = " " + cell + strings.Repeat(" ", widths[i]-visible(cell)) + " "
		}
		bar := style.Render("│")
		return bar + strings.Join(parts, bar) + bar
	}

	u.println(rule("┌", "┬", "┐"))
	if len(headers) > 0 {
		u.println(line(headers))
		u.println(rule("├", "┼", "┤"))
	}
	for _, r := range rows {
		u.println(line(r))
	}
	u.println(rule("└", "┴", "┘"))
}

// Spinner shows msg with a spinner until the returned func is called.
// Without a terminal it prints msg once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		fmt.Fprintln(u.out)
	}
}

// Indent returns a UI that prints one level deeper.
func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}

// Writer is the underlying output, for child processes.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
