package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dgrm/shape"
)

func newTestModel(t *testing.T, typeCode int) model {
	t.Helper()
	return press(t, newModel(newTestWorkspace(t, typeCode)), tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestWindowSizeCentersOnce(t *testing.T) {
	m := newTestModel(t, shape.TypeEllipse)
	assert.Equal(t, -40, m.ws.panX)
	assert.Equal(t, -11, m.ws.panY)

	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, -40, m.ws.panX)
	assert.Equal(t, 100, m.width)
}

func TestCycleTypeKey(t *testing.T) {
	m := newTestModel(t, shape.TypeLabelRect)
	m = press(t, m, keyRunes("t"))
	assert.Equal(t, shape.TypeTextLabelRect, m.ws.shape.Record().Type)
	m = press(t, m, keyRunes("T"))
	assert.Equal(t, shape.TypeLabelRect, m.ws.shape.Record().Type)
	m = press(t, m, keyRunes("u"))
	assert.Equal(t, shape.TypeTextLabelRect, m.ws.shape.Record().Type)
}

func TestEditLabel(t *testing.T) {
	m := newTestModel(t, shape.TypeLabelRect)
	m = press(t, m, keyRunes("e"))
	require.Equal(t, ModeEditing, m.mode)
	m = press(t, m, keyRunes("x"), tea.KeyMsg{Type: tea.KeySpace}, keyRunes("y"))
	assert.Equal(t, "actionx y", m.ws.shape.Text())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, defaultTitle, m.ws.shape.Text())
	assert.Empty(t, m.ws.undoStack)

	m = press(t, m, keyRunes("e"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyCtrlJ}, keyRunes("n"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "actio\nn", m.ws.shape.Text())
	assert.Len(t, m.ws.undoStack, 1)
}

func TestMoveMode(t *testing.T) {
	m := newTestModel(t, shape.TypeEllipse)
	m = press(t, m, keyRunes("m"), keyRunes("l"))
	assert.Equal(t, ModeMove, m.mode)
	assert.Equal(t, float64(moveStep), m.ws.shape.Record().Position.X)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0.0, m.ws.shape.Record().Position.X)

	m = press(t, m, keyRunes("m"), keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, float64(moveStep), m.ws.shape.Record().Position.Y)
	assert.Len(t, m.ws.undoStack, 1)
}

func TestQuitConfirmation(t *testing.T) {
	m := newTestModel(t, shape.TypeEllipse)
	m = press(t, m, keyRunes("q"))
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Contains(t, m.View(), "Quit dgrm?")

	m = press(t, m, keyRunes("n"))
	assert.Equal(t, ModeNormal, m.mode)

	m.ws.cfg.Confirmations = false
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSettingsToggle(t *testing.T) {
	m := newTestModel(t, shape.TypeLabelRect)
	m = press(t, m, keyRunes("s"))
	assert.True(t, m.showSettings)
	assert.Equal(t, 80-panelWidth, m.canvasWidth())
	assert.Contains(t, m.View(), "alignment: center")

	m = press(t, m, keyRunes("s"))
	assert.False(t, m.showSettings)

	m = newTestModel(t, shape.TypeRhombus)
	m = press(t, m, keyRunes("s"))
	assert.False(t, m.showSettings)
	assert.NotEmpty(t, m.errorMessage)
}

func TestAlignOnlyForLabelRect(t *testing.T) {
	m := newTestModel(t, shape.TypeEllipse)
	m = press(t, m, keyRunes("a"))
	assert.Equal(t, "alignment applies to labeled rectangles only", m.errorMessage)

	// any key clears the message
	m = press(t, m, keyRunes("r"))
	assert.Empty(t, m.errorMessage)
}

func TestView(t *testing.T) {
	m := newTestModel(t, shape.TypeEllipse)
	view := m.View()
	assert.Contains(t, view, "NORMAL")
	assert.Contains(t, view, "acti")

	m = press(t, m, keyRunes("?"))
	assert.Contains(t, m.View(), "dgrm help")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.help)
}

func TestSaveAndOpenRecord(t *testing.T) {
	m := newTestModel(t, shape.TypeLabelRect)
	m = press(t, m, keyRunes("w"))
	require.Equal(t, ModeFileInput, m.mode)
	assert.Equal(t, "shape.json", m.filename)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	require.Empty(t, m.errorMessage)
	assert.FileExists(t, m.ws.cfg.GetSavePath("shape.json"))

	// saving again asks before overwriting
	m = press(t, m, keyRunes("w"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeConfirm, m.mode)
	m = press(t, m, keyRunes("y"))
	assert.Equal(t, ModeNormal, m.mode)

	m = press(t, m, keyRunes("t"), keyRunes("o"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.errorMessage)
	assert.Equal(t, shape.TypeLabelRect, m.ws.shape.Record().Type)
}
