package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeMove
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveSVG
	FileOpSaveJSON
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionSetText ActionType = iota
	ActionSetType
	ActionSetDims
	ActionMove
	ActionLoad
)

const (
	defaultTitle = "action"
	exportPad    = 24
	moveStep     = 8 // px per key press in move mode
)
