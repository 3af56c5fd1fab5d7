package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAlignsColumns(t *testing.T) {
	var out bytes.Buffer
	u := NewWriterUI(&out, strings.NewReader(""))
	u.Table([]string{"Asset", "Price"}, [][]string{
		{"ETH", "2000"},
		{"USDC", "1"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(l))
	}
	assert.Contains(t, lines[1], "Asset")
	assert.Contains(t, lines[3], "2000")
	assert.Contains(t, lines[4], "USDC")
}

func TestSectionCentresTitle(t *testing.T) {
	var out bytes.Buffer
	u := NewWriterUI(&out, strings.NewReader(""))
	u.Section("Supply")
	line := strings.TrimSpace(out.String())
	assert.Len(t, line, sectionWidth)
	assert.Contains(t, line, " Supply ")
}

func TestConfirmReadsAnswer(t *testing.T) {
	var out bytes.Buffer
	u := NewWriterUI(&out, strings.NewReader("maybe\ny\n"))
	assert.True(t, u.Confirm("Broadcast?", false))
	assert.Contains(t, out.String(), "please enter y or n")

	u = NewWriterUI(&out, strings.NewReader("\n"))
	assert.False(t, u.Confirm("Broadcast?", false))
}

func TestIndentPrefixesOutput(t *testing.T) {
	var out bytes.Buffer
	u := NewWriterUI(&out, strings.NewReader(""))
	u.Indent().Info("nested")
	assert.Equal(t, "  nested\n", out.String())
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI("n")
	r.Info("Supplying %s", "ETH")
	r.KeyValue([][2]string{{"Hash", "0xabc"}})
	assert.False(t, r.Indent().Confirm("Broadcast?", true))
	assert.True(t, r.HasMessage("supplying eth"))
	assert.Equal(t, []string{"Hash: 0xabc"}, r.Messages("KeyValue"))
	assert.Panics(t, func() { r.Ask(nil) })
}
