package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 28

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(panelWidth - 2)
	panelTitleStyle = lipgloss.NewStyle().Bold(true)
)

func (m model) canvasWidth() int {
	w := m.width
	if m.showSettings {
		w -= panelWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (m model) canvasHeight() int {
	// leave room for the status line
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	canvas := strings.Join(m.ws.preview.Render(m.canvasWidth(), m.canvasHeight(), m.ws.panX, m.ws.panY), "\n")
	if m.showSettings {
		if title, lines := m.ws.settingsLines(); title != "" {
			body := panelTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
			canvas = lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle.Render(body))
		}
	}
	return canvas + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeEditing:
		runes := []rune(m.editText)
		text := string(runes[:m.editCursorPos]) + "▏" + string(runes[m.editCursorPos:])
		status = "label: " + strings.ReplaceAll(text, "\n", "⏎")
	case ModeFileInput:
		status = fmt.Sprintf("%s: %s", m.fileOpString(), m.filename)
	case ModeConfirm:
		status = m.confirmString()
	default:
		status = fmt.Sprintf("%s  %s  ?:help", m.modeString(), m.ws.describe())
	}

	line := statusStyle.Render(padRight(status, m.width))
	switch {
	case m.errorMessage != "":
		line = statusStyle.Render(padRight(status, m.width-len(m.errorMessage)-1)) + " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		line = statusStyle.Render(padRight(status, m.width-len(m.successMessage)-1)) + " " + successStyle.Render(m.successMessage)
	}
	return line
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func (m model) modeString() string {
	switch m.mode {
	case ModeEditing:
		return "EDIT"
	case ModeMove:
		return "MOVE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	}
	return "NORMAL"
}

func (m model) fileOpString() string {
	switch m.fileOp {
	case FileOpSavePNG:
		return "Export PNG"
	case FileOpSaveSVG:
		return "Export SVG"
	case FileOpSaveJSON:
		return "Save record"
	}
	return "Open record"
}

func (m model) confirmString() string {
	switch m.confirmAction {
	case ConfirmOverwriteFile:
		return fmt.Sprintf("%s exists. Overwrite? (y/n)", m.filename)
	}
	return "Quit dgrm? (y/n)"
}

var helpLines = []string{
	"dgrm help",
	"=========",
	"",
	"  h/j/k/l, arrows  Pan the canvas (Shift: 2x)",
	"  e, Enter         Edit the label (Ctrl+J: new line, Enter: done, Esc: cancel)",
	"  m                Move the shape (Enter: done, Esc: cancel)",
	"  t / T            Next / previous shape type",
	"  a                Cycle text alignment (labeled rectangles)",
	"  + / -            Grow / shrink by one ladder step",
	"  r                Force a redraw",
	"  s                Toggle the settings panel",
	"  u / U            Undo / redo",
	"  y                Copy the shape record as JSON",
	"  p                Paste clipboard text as the label",
	"  S / V            Export PNG / SVG",
	"  w / o            Save / open the shape record",
	"  ?                Toggle this help",
	"  q, Ctrl+C        Quit",
}

func (m model) helpView() string {
	return strings.Join(helpLines, "\n")
}
