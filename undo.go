package main

func (m *model) undo() {
	if !m.editor.CanUndo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.editor.Undo()
	m.successMessage = "Undone"
}

func (m *model) redo() {
	if !m.editor.CanRedo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.editor.Redo()
	m.successMessage = "Redone"
}

func (m *model) reset() {
	m.editor.Reset()
	m.successMessage = "Card reset to defaults"
}
