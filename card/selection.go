package card

// GroupOf maps a field to the style bucket it is painted with.
func GroupOf(f Field) (StyleGroup, bool) {
	switch f {
	case FieldName:
		return GroupName, true
	case FieldPosition:
		return GroupPosition, true
	case FieldCompany:
		return GroupCompany, true
	case FieldPhone, FieldEmail, FieldAddress, FieldWebsite:
		return GroupContact, true
	}
	return "", false
}

// TextOf returns the text of field f in doc; empty for FieldNone.
func TextOf(doc Document, f Field) string {
	c := doc.Content
	switch f {
	case FieldName:
		return c.Name
	case FieldPosition:
		return c.Position
	case FieldCompany:
		return c.Company
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	case FieldAddress:
		return c.Address
	case FieldWebsite:
		return c.Website
	}
	return ""
}

// StyleOf returns the typography field f is painted with.
func StyleOf(doc Document, f Field) (TextStyle, bool) {
	g, ok := GroupOf(f)
	if !ok {
		return TextStyle{}, false
	}
	return *doc.Styling.Group(g), true
}

func contentPatchFor(f Field, text string) (ContentPatch, bool) {
	var p ContentPatch
	switch f {
	case FieldName:
		p.Name = &text
	case FieldPosition:
		p.Position = &text
	case FieldCompany:
		p.Company = &text
	case FieldPhone:
		p.Phone = &text
	case FieldEmail:
		p.Email = &text
	case FieldAddress:
		p.Address = &text
	case FieldWebsite:
		p.Website = &text
	default:
		return p, false
	}
	return p, true
}

// Select points generic text and style edits at f. Unknown fields are
// ignored. Selection is not recorded in history.
func (e *Editor) Select(f Field) {
	if !f.valid() {
		return
	}
	e.selected = f
}

func (e *Editor) Selection() Field {
	return e.selected
}

// SelectedText returns the current text of the selected field.
func (e *Editor) SelectedText() string {
	return TextOf(e.history.Current(), e.selected)
}

// SelectedStyle returns the typography of the selected field.
func (e *Editor) SelectedStyle() (TextStyle, bool) {
	return StyleOf(e.history.Current(), e.selected)
}

// SetSelectedText replaces the selected field's text. No-op without a selection.
func (e *Editor) SetSelectedText(text string) {
	p, ok := contentPatchFor(e.selected, text)
	if !ok {
		return
	}
	e.UpdateContent(p)
}

// StyleSelected applies p to the style group of the selected field,
// overriding p.Group. No-op without a selection.
func (e *Editor) StyleSelected(p StylingPatch) {
	g, ok := GroupOf(e.selected)
	if !ok {
		return
	}
	p.Group = g
	e.UpdateTextStyling(p)
}

// DeleteSelectedFieldContent empties the selected field's text.
func (e *Editor) DeleteSelectedFieldContent() {
	e.SetSelectedText("")
}
