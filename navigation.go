package main

import "cardsmith/card"

// handleNavigation moves the selection through the card fields, wrapping
// at both ends. From no selection, forward starts at the first field and
// backward at the last.
func (m *model) handleNavigation(key string) {
	switch key {
	case "tab", "j", "down":
		m.editor.Select(stepField(m.editor.Selection(), 1))
	case "shift+tab", "k", "up":
		m.editor.Select(stepField(m.editor.Selection(), -1))
	case "esc":
		m.editor.Select(card.FieldNone)
	}
}

func stepField(current card.Field, delta int) card.Field {
	n := len(card.Fields)
	idx := -1
	for i, f := range card.Fields {
		if f == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta > 0 {
			return card.Fields[0]
		}
		return card.Fields[n-1]
	}
	return card.Fields[((idx+delta)%n+n)%n]
}

func cycle[T comparable](choices []T, current T, delta int) T {
	n := len(choices)
	for i, c := range choices {
		if c == current {
			return choices[((i+delta)%n+n)%n]
		}
	}
	return choices[0]
}
