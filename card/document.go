package card

import "slices"

// ImageHandle is an opaque reference to image bytes (data URI, URL, or path).
// The core never decodes it.
type ImageHandle string

// Document is one complete snapshot of the card. Values returned by the
// editor are independent copies; mutating them has no effect on history.
type Document struct {
	Content    Content
	Styling    Styling
	Background Background
	Logo       Logo
	QR         QR
}

type Content struct {
	Name         string
	Position     string
	Company      string
	Phone        string
	Email        string
	Address      string
	Website      string
	ProfileImage ImageHandle
}

type TextStyle struct {
	Font          string
	Size          float64
	Color         string
	Bold          bool
	LetterSpacing float64
	Align         Alignment
}

// Styling holds one TextStyle per StyleGroup.
type Styling struct {
	Name     TextStyle
	Position TextStyle
	Company  TextStyle
	Contact  TextStyle
}

// Group returns a pointer to the bucket for g, or nil for an unknown group.
func (s *Styling) Group(g StyleGroup) *TextStyle {
	switch g {
	case GroupName:
		return &s.Name
	case GroupPosition:
		return &s.Position
	case GroupCompany:
		return &s.Company
	case GroupContact:
		return &s.Contact
	}
	return nil
}

type Background struct {
	Type     BackgroundType
	Color    string
	Gradient []string
}

type Logo struct {
	Image ImageHandle
	Text  string
	Font  string
	Size  float64
	Color string
	Bold  bool
}

// QR keeps every variant's payload; only Type decides which one is live.
// Code is the rasterized placeholder pattern for the live variant.
type QR struct {
	Type    QRType
	Website WebsiteQR
	Email   EmailQR
	Phone   PhoneQR
	AR      ARQR
	SMS     SMSQR
	Event   EventQR
	Code    ImageHandle
}

type WebsiteQR struct {
	URL string
}

type EmailQR struct {
	Address string
	Subject string
	Body    string
}

type PhoneQR struct {
	Number string
}

type ARQR struct {
	MarkerURL string
}

type SMSQR struct {
	Number  string
	Message string
}

type EventQR struct {
	Title    string
	Location string
	Start    string
	End      string
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	d.Background.Gradient = slices.Clone(d.Background.Gradient)
	return d
}

// Equal reports whether two snapshots hold the same field values.
func (d Document) Equal(other Document) bool {
	return d.Content == other.Content &&
		d.Styling == other.Styling &&
		d.Background.Type == other.Background.Type &&
		d.Background.Color == other.Background.Color &&
		slices.Equal(d.Background.Gradient, other.Background.Gradient) &&
		d.Logo == other.Logo &&
		d.QR == other.QR
}
