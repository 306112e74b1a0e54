package main

import (
	"go.uber.org/zap"

	"dgrm/shape"
)

// record pushes an action going from before to the current record. Edits
// that changed nothing are dropped.
func (ws *workspace) record(actionType ActionType, before shape.Record) {
	after, ok := ws.current()
	if !ok || recordsEqual(before, after) {
		return
	}
	ws.undoStack = append(ws.undoStack, Action{
		Type:    actionType,
		Data:    after,
		Inverse: before,
	})
	ws.redoStack = ws.redoStack[:0]
}

func (ws *workspace) undo() bool {
	if len(ws.undoStack) == 0 {
		return false
	}

	lastIndex := len(ws.undoStack) - 1
	action := ws.undoStack[lastIndex]
	ws.undoStack = ws.undoStack[:lastIndex]

	if err := ws.restore(action.Inverse); err != nil {
		ws.log.Warn("undo failed", zap.Int("action", int(action.Type)), zap.Error(err))
		return false
	}
	ws.redoStack = append(ws.redoStack, action)
	return true
}

func (ws *workspace) redo() bool {
	if len(ws.redoStack) == 0 {
		return false
	}

	lastIndex := len(ws.redoStack) - 1
	action := ws.redoStack[lastIndex]
	ws.redoStack = ws.redoStack[:lastIndex]

	if err := ws.restore(action.Data); err != nil {
		ws.log.Warn("redo failed", zap.Int("action", int(action.Type)), zap.Error(err))
		return false
	}
	ws.undoStack = append(ws.undoStack, action)
	return true
}
