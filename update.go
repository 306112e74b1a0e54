package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(ws *workspace) model {
	return model{ws: ws, mode: ModeNormal}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.centered {
			// put the shape origin in the middle of the canvas
			m.ws.panX = -m.canvasWidth() / 2
			m.ws.panY = -m.canvasHeight() / 2
			m.centered = true
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			switch key {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		m.errorMessage = ""
		switch m.mode {
		case ModeEditing:
			return m.updateEditing(msg)
		case ModeMove:
			return m.updateMove(key)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(key)
		}
		m.successMessage = ""
		return m.updateNormal(key)
	}
	return m, nil
}

func (m model) updateNormal(key string) (tea.Model, tea.Cmd) {
	ws := m.ws
	if isNavigationKey(key) {
		m.handleNavigation(key, m.getMoveSpeed(key))
		return m, nil
	}
	switch key {
	case "q":
		if ws.cfg.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "e", "enter":
		m.before, _ = ws.current()
		m.editText = ws.shape.Text()
		m.editCursorPos = len([]rune(m.editText))
		m.mode = ModeEditing
	case "m":
		m.before, _ = ws.current()
		m.mode = ModeMove
	case "t":
		if err := ws.cycleType(1); err != nil {
			m.errorMessage = err.Error()
		}
	case "T":
		if err := ws.cycleType(-1); err != nil {
			m.errorMessage = err.Error()
		}
	case "a":
		if !ws.cycleAlign() {
			m.errorMessage = "alignment applies to labeled rectangles only"
		}
	case "+", "=":
		ws.grow(1)
	case "-":
		if !ws.grow(-1) {
			m.errorMessage = "already at the smallest size"
		}
	case "r":
		ws.shape.Redraw(true)
	case "s":
		if _, ok := ws.shape.Settings(); !ok {
			m.errorMessage = fmt.Sprintf("no settings for %v", ws.shape.Geometry().Variant())
			m.showSettings = false
			break
		}
		m.showSettings = !m.showSettings
	case "u":
		if !ws.undo() {
			m.errorMessage = "nothing to undo"
		}
	case "U":
		if !ws.redo() {
			m.errorMessage = "nothing to redo"
		}
	case "y":
		if err := ws.copyRecord(); err != nil {
			m.errorMessage = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.successMessage = "record copied to clipboard"
		}
	case "p":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("paste failed: %v", err)
			break
		}
		ws.setText(cleanClipboardText(text))
	case "S":
		m.startFileInput(FileOpSavePNG)
	case "V":
		m.startFileInput(FileOpSaveSVG)
	case "w":
		m.startFileInput(FileOpSaveJSON)
	case "o":
		m.startFileInput(FileOpOpen)
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	runes := []rune(m.editText)
	switch msg.Type {
	case tea.KeyEnter:
		m.ws.record(ActionSetText, m.before)
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEsc:
		if err := m.ws.restore(m.before); err != nil {
			m.errorMessage = err.Error()
		}
		m.mode = ModeNormal
		return m, nil
	case tea.KeyCtrlJ:
		runes = insertRunes(runes, m.editCursorPos, []rune{'\n'})
		m.editCursorPos++
	case tea.KeyBackspace:
		if m.editCursorPos > 0 {
			runes = append(runes[:m.editCursorPos-1], runes[m.editCursorPos:]...)
			m.editCursorPos--
		}
	case tea.KeyLeft:
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
		return m, nil
	case tea.KeyRight:
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
		return m, nil
	case tea.KeySpace:
		runes = insertRunes(runes, m.editCursorPos, []rune{' '})
		m.editCursorPos++
	case tea.KeyRunes:
		runes = insertRunes(runes, m.editCursorPos, msg.Runes)
		m.editCursorPos += len(msg.Runes)
	default:
		return m, nil
	}
	m.editText = string(runes)
	// the shape follows every keystroke
	m.ws.shape.SetText(m.editText)
	return m, nil
}

func insertRunes(runes []rune, at int, ins []rune) []rune {
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:at]...)
	out = append(out, ins...)
	return append(out, runes[at:]...)
}

func (m model) updateMove(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		m.ws.record(ActionMove, m.before)
		m.mode = ModeNormal
	case "esc":
		if err := m.ws.restore(m.before); err != nil {
			m.errorMessage = err.Error()
		}
		m.mode = ModeNormal
	default:
		if isNavigationKey(key) {
			m.handleNavigation(key, m.getMoveSpeed(key))
		}
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.fileOp = op
	m.mode = ModeFileInput
	m.filename = m.ws.filename
	if m.filename == "" {
		m.filename = "shape"
	}
	m.filename = strings.TrimSuffix(m.filename, filepath.Ext(m.filename)) + fileExtension(op)
}

func fileExtension(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return ".png"
	case FileOpSaveSVG:
		return ".svg"
	}
	return ".json"
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	case tea.KeyEnter:
		if m.filename == "" {
			m.errorMessage = "file name required"
			return m, nil
		}
		if m.fileOp == FileOpOpen {
			m.openFile()
			return m, nil
		}
		path := m.ws.cfg.GetSavePath(m.filename)
		if _, err := os.Stat(path); err == nil && m.ws.cfg.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.saveFile()
	}
	return m, nil
}

func (m *model) openFile() {
	m.mode = ModeNormal
	data, err := os.ReadFile(m.ws.cfg.GetSavePath(m.filename))
	if errors.Is(err, fs.ErrNotExist) {
		data, err = os.ReadFile(m.filename)
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("open failed: %v", err)
		return
	}
	if err := m.ws.load(data); err != nil {
		m.errorMessage = fmt.Sprintf("open failed: %v", err)
		return
	}
	m.ws.filename = m.filename
	m.successMessage = "opened " + m.filename
}

func (m *model) saveFile() {
	m.mode = ModeNormal
	path := m.ws.cfg.GetSavePath(m.filename)
	if err := m.ws.export(path); err != nil {
		m.errorMessage = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.ws.filename = m.filename
	m.successMessage = "saved " + path
}

func (m model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.saveFile()
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}
