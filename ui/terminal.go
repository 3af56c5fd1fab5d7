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
	"github.com/charmbracelet/lipgloss/table"
	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
	promptPrefix = "> "
)

// TerminalUI writes coloured output to a terminal and reads answers from
// in. Each indent level adds two spaces.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	styles      *lipgloss.Renderer
	animate     bool
}

// NewTerminalUI creates a TerminalUI on os.Stdout and os.Stdin. Colours are
// on only when stdout is a terminal and noColor is false.
func NewTerminalUI(noColor bool) *TerminalUI {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out:     os.Stdout,
		in:      bufio.NewReader(os.Stdin),
		au:      aurora.NewAurora(isTerm && !noColor),
		styles:  lipgloss.NewRenderer(os.Stdout),
		animate: isTerm,
	}
}

// NewWriterUI creates a colourless TerminalUI on arbitrary streams.
func NewWriterUI(out io.Writer, in io.Reader) *TerminalUI {
	return &TerminalUI{
		out:    out,
		in:     bufio.NewReader(in),
		au:     aurora.NewAurora(false),
		styles: lipgloss.NewRenderer(out),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

// println writes every line of s at the current indent.
func (u *TerminalUI) println(s string) {
	p := u.prefix()
	for _, line := range strings.Split(s, "\n") {
		fmt.Fprintf(u.out, "%s%s\n", p, line)
	}
}

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
	default:
		return t.Text
	}
}

func (u *TerminalUI) styled(sev Severity, format string, args []any) {
	u.println(u.Style(StyledText{Text: fmt.Sprintf(format, args...), Severity: sev}))
}

func (u *TerminalUI) Info(format string, args ...any)     { u.styled(SeverityInfo, format, args) }
func (u *TerminalUI) Success(format string, args ...any)  { u.styled(SeveritySuccess, format, args) }
func (u *TerminalUI) Warn(format string, args ...any)     { u.styled(SeverityWarn, format, args) }
func (u *TerminalUI) Error(format string, args ...any)    { u.styled(SeverityError, format, args) }
func (u *TerminalUI) Critical(format string, args ...any) { u.styled(SeverityCritical, format, args) }

// Section prints a separator line centred around the title between blank
// lines:
//
//	===== Repay borrow =====
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - lipgloss.Width(titled)
	if bars < 6 {
		bars = 6
	}
	line := strings.Repeat("=", bars/2) + titled + strings.Repeat("=", bars-bars/2)
	fmt.Fprintln(u.out)
	u.println(line)
	fmt.Fprintln(u.out)
}

// KeyValue renders an aligned 2-column block. Labels are padded to the
// longest one.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	label := u.styles.NewStyle().Width(width + 2)
	for _, r := range rows {
		u.println(label.Render(r[0]) + r[1])
	}
}

// Table renders a bordered table. Widths ignore ANSI codes so cells
// coloured with Style still line up.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	if len(rows) == 0 && len(headers) == 0 {
		return
	}
	cell := u.styles.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(u.styles.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	u.println(t.String())
}

// Spinner starts an animated spinner with msg and returns a stop function.
// On non-terminal outputs only the message is printed once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.animate {
		u.println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner clears its line with \r only
		fmt.Fprintln(u.out)
	}
}

// Ask prints a "> " prompt at the current indent and reads a line until
// validate accepts it. A nil validator accepts everything. End of input
// returns whatever was read.
func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprint(u.out, u.prefix()+promptPrefix)
		text, err := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil || err != nil {
			return input
		}
		verr := validate(input)
		if verr == nil {
			return input
		}
		u.Error("%s", verr)
	}
}

// Confirm asks a yes/no question. An empty answer picks the default.
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
		return fmt.Errorf("please enter y or n")
	})))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

// Indent returns a child UI at one deeper indent level sharing the same
// streams.
func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}
