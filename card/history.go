package card

// History is a linear undo/redo stack of snapshots with a cursor. It always
// holds at least one snapshot and the one at the cursor is the live document.
// Committing while the cursor is behind the end discards the redo branch.
type History struct {
	snapshots []Document
	cursor    int
}

func NewHistory(initial Document) *History {
	return &History{snapshots: []Document{initial.Clone()}}
}

// Commit truncates everything after the cursor, appends doc and makes it current.
func (h *History) Commit(doc Document) {
	h.snapshots = append(h.snapshots[:h.cursor+1], doc.Clone())
	h.cursor++
}

// Undo steps back one snapshot. At the first snapshot it does nothing and
// reports false.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps forward one snapshot. At the last snapshot it does nothing and
// reports false.
func (h *History) Redo() bool {
	if h.cursor >= len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	return true
}

// Reset drops every snapshot and starts over from initial.
func (h *History) Reset(initial Document) {
	h.snapshots = []Document{initial.Clone()}
	h.cursor = 0
}

func (h *History) Current() Document {
	return h.snapshots[h.cursor].Clone()
}

// at returns the snapshot at index i.
func (h *History) at(i int) (Document, bool) {
	if i < 0 || i >= len(h.snapshots) {
		return Document{}, false
	}
	return h.snapshots[i].Clone(), true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

func (h *History) Len() int { return len(h.snapshots) }

func (h *History) Cursor() int { return h.cursor }
