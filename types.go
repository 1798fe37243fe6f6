package main

import (
	"log/slog"

	"cardsmith/card"
)

type model struct {
	width            int
	height           int
	editor           *card.Editor
	mode             Mode
	help             bool
	helpScroll       int
	category         Category
	editText         []rune
	editCursorPos    int
	commandText      []rune
	commandCursorPos int
	filename         string
	fileOp           FileOperation
	confirmAction    ConfirmAction
	pendingPath      string
	errorMessage     string
	successMessage   string
	config           *Config
	logger           *slog.Logger
}
