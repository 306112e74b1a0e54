package main

import (
	"dgrm/shape"
	"dgrm/textlayout"

	"go.uber.org/zap"
)

// workspace is the one shape being edited plus everything it is drawn with.
type workspace struct {
	cfg      *Config
	log      *zap.Logger
	text     *textlayout.Measurer
	preview  *previewSurface
	registry *shape.Registry
	shape    *shape.Shape

	undoStack []Action
	redoStack []Action
	filename  string
	panX      int
	panY      int
}

type model struct {
	width        int
	height       int
	ws           *workspace
	mode         Mode
	help         bool
	showSettings bool

	editText      string
	editCursorPos int
	// before is the record when the current edit or move started
	before   shape.Record
	centered bool

	filename      string
	fileOp        FileOperation
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string
}

// Action is one undoable edit. Data and Inverse are the records after and
// before it.
type Action struct {
	Type    ActionType
	Data    shape.Record
	Inverse shape.Record
}
