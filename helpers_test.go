package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dgrm/shape"
)

func newTestWorkspace(t *testing.T, typeCode int) *workspace {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	ws, err := newWorkspace(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, ws.create(shape.Record{Type: typeCode, Position: &shape.Point{}, Title: defaultTitle}))
	return ws
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.Update(msg)
	}
	out, ok := next.(model)
	require.True(t, ok)
	return out
}
