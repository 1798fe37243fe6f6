// Package card is the editing core of a business-card designer: the
// document model, its undo/redo history, field selection and the
// placeholder code pattern.
//
// An Editor is the only writer of its document. It is not safe for
// concurrent use; callers drive it from a single goroutine.
package card

import (
	"io"
	"log/slog"
	"strings"
)

type Editor struct {
	history   *History
	defaults  Document
	selected  Field
	logger    *slog.Logger
	listeners []func(Document)
}

type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaults replaces the registry defaults used at start and on Reset.
func WithDefaults(doc Document) Option {
	return func(e *Editor) {
		e.defaults = doc.Clone()
	}
}

func New(opts ...Option) *Editor {
	e := &Editor{
		defaults: Defaults(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.defaults.QR.Code = EncodePattern(GeneratePattern(e.defaults.QR))
	e.history = NewHistory(e.defaults)
	return e
}

// Snapshot returns a copy of the live document.
func (e *Editor) Snapshot() Document {
	return e.history.Current()
}

// OnChange registers fn to run after every commit, undo, redo and reset
// that changes the live document.
func (e *Editor) OnChange(fn func(Document)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Editor) UpdateContent(p ContentPatch) {
	doc := e.history.Current()
	p.apply(&doc.Content)
	e.commit("content", doc)
}

// UpdateTextStyling applies p to the bucket named by p.Group. An unknown
// group is ignored and nothing is committed.
func (e *Editor) UpdateTextStyling(p StylingPatch) {
	doc := e.history.Current()
	if !p.apply(&doc.Styling) {
		e.logger.Debug("styling ignored", "group", string(p.Group))
		return
	}
	e.commit("styling", doc)
}

func (e *Editor) UpdateBackground(p BackgroundPatch) {
	doc := e.history.Current()
	p.apply(&doc.Background)
	e.commit("background", doc)
}

func (e *Editor) UpdateLogo(p LogoPatch) {
	doc := e.history.Current()
	p.apply(&doc.Logo)
	e.commit("logo", doc)
}

// UpdateQR merges p and regenerates the code image in the same commit.
func (e *Editor) UpdateQR(p QRPatch) {
	doc := e.history.Current()
	p.apply(&doc.QR)
	doc.QR.Code = EncodePattern(GeneratePattern(doc.QR))
	e.commit("qr", doc)
}

// Apply routes loosely keyed values to the update for group: "content",
// "style.<name|position|company|contact>", "background", "logo" or "qr".
// Unknown groups, and calls where no key is recognized, change nothing.
func (e *Editor) Apply(group string, fields map[string]string) bool {
	group = strings.ToLower(strings.TrimSpace(group))
	switch {
	case group == "content":
		p, n := ParseContentPatch(fields)
		if n == 0 {
			return false
		}
		e.UpdateContent(p)
	case strings.HasPrefix(group, "style."):
		g := StyleGroup(strings.TrimPrefix(group, "style."))
		if (&Styling{}).Group(g) == nil {
			return false
		}
		p, n := ParseStylingPatch(g, fields)
		if n == 0 {
			return false
		}
		e.UpdateTextStyling(p)
	case group == "background", group == "bg":
		p, n := ParseBackgroundPatch(fields)
		if n == 0 {
			return false
		}
		e.UpdateBackground(p)
	case group == "logo":
		p, n := ParseLogoPatch(fields)
		if n == 0 {
			return false
		}
		e.UpdateLogo(p)
	case group == "qr":
		p, n := ParseQRPatch(fields)
		if n == 0 {
			return false
		}
		e.UpdateQR(p)
	default:
		return false
	}
	return true
}

// Undo restores the previous snapshot. At the start of history it is a no-op.
func (e *Editor) Undo() {
	if !e.history.Undo() {
		return
	}
	e.logger.Debug("undo", "cursor", e.history.Cursor(), "len", e.history.Len())
	e.notify()
}

// Redo re-applies the next snapshot. At the end of history it is a no-op.
func (e *Editor) Redo() {
	if !e.history.Redo() {
		return
	}
	e.logger.Debug("redo", "cursor", e.history.Cursor(), "len", e.history.Len())
	e.notify()
}

// Reset returns to the defaults and clears history. Selection is kept.
func (e *Editor) Reset() {
	e.history.Reset(e.defaults)
	e.logger.Debug("reset")
	e.notify()
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// History exposes the position within history for status display.
func (e *Editor) History() (cursor, length int) {
	return e.history.Cursor(), e.history.Len()
}

func (e *Editor) commit(op string, doc Document) {
	e.history.Commit(doc)
	e.logger.Debug("commit", "op", op, "cursor", e.history.Cursor(), "len", e.history.Len())
	e.notify()
}

func (e *Editor) notify() {
	if len(e.listeners) == 0 {
		return
	}
	doc := e.history.Current()
	for _, fn := range e.listeners {
		fn(doc.Clone())
	}
}
