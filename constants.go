package main

import "cardsmith/card"

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeCommand
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

type ConfirmAction int

const (
	ConfirmDeleteContent ConfirmAction = iota
	ConfirmReset
	ConfirmQuit
	ConfirmOverwriteFile
)

// Category is the template family picked for the card. The editor core
// never sees it; only the preview does.
type Category string

const (
	CategoryCorporate Category = "corporate"
	CategoryCreative  Category = "creative"
	CategoryMinimal   Category = "minimal"
	CategoryModern    Category = "modern"
	CategoryClassic   Category = "classic"
)

var categories = []Category{
	CategoryCorporate,
	CategoryCreative,
	CategoryMinimal,
	CategoryModern,
	CategoryClassic,
}

var fontChoices = []string{card.DefaultFont, "Go", "Go Mono", "Helvetica", "Georgia"}

var colorChoices = []string{"#111111", "#333333", "#555555", "#1d4ed8", "#b91c1c", "#047857", "#7c3aed", "#ffffff"}

var backgroundChoices = []string{"#ffffff", "#f8fafc", "#fef3c7", "#e0f2fe", "#111827", "#1e3a8a"}

const (
	minFontSize  = 6
	maxFontSize  = 72
	spacingStep  = 0.5
	previewWidth = 48
	pngWidth     = 700
	pngHeight    = 400
)
