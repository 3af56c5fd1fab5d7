package ui

import (
	"encoding/json"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; data consumers see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green
	SeverityWarn                     // yellow
	SeverityError                    // red
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals to JSON as just Text, so `--json` output never carries ANSI
// codes:
//
//	u.Info("Health: %s", u.Style(health))
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string.
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything an onyx command needs from the terminal.
//
// Production code uses TerminalUI. Tests use RecordingUI, which captures
// output and serves scripted answers to Ask and Confirm.
type UI interface {
	// Style returns t coloured according to its Severity. With colours
	// disabled the plain text is returned unchanged.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Critical writes what the user must review before an irreversible
	// action, such as the call about to be signed or the hash of a
	// broadcast transaction.
	Critical(format string, args ...any)

	// Section writes a separator centred around title:
	// "===== Supply ====="
	Section(title string)

	// KeyValue renders an aligned label/value block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table. A nil headers slice renders no header
	// row.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner and returns the function that stops
	// it. Outside a terminal the message is printed once instead.
	//
	//	stop := u.Spinner("Waiting for confirmation...")
	//	defer stop()
	Spinner(msg string) func()

	// Ask shows a "> " prompt and reads a line, looping until validate
	// returns nil. A nil validate accepts anything.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question. An empty answer picks the default.
	Confirm(prompt string, defaultYes bool) bool

	// Indent returns a child UI one level deeper sharing the same streams.
	Indent() UI
}
