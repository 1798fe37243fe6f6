package card

import "strings"

// Field identifies one editable text region of the card.
type Field string

const (
	FieldNone     Field = ""
	FieldName     Field = "name"
	FieldPosition Field = "position"
	FieldCompany  Field = "company"
	FieldPhone    Field = "phone"
	FieldEmail    Field = "email"
	FieldAddress  Field = "address"
	FieldWebsite  Field = "website"
)

// Fields lists every selectable field in card order.
var Fields = []Field{
	FieldName,
	FieldPosition,
	FieldCompany,
	FieldPhone,
	FieldEmail,
	FieldAddress,
	FieldWebsite,
}

// ParseField resolves a field name. "none" and "" both map to FieldNone.
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return FieldNone, true
	}
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return FieldNone, false
}

func (f Field) valid() bool {
	if f == FieldNone {
		return true
	}
	for _, known := range Fields {
		if known == f {
			return true
		}
	}
	return false
}

// StyleGroup is a typography bucket. Contact fields share one bucket.
type StyleGroup string

const (
	GroupName     StyleGroup = "name"
	GroupPosition StyleGroup = "position"
	GroupCompany  StyleGroup = "company"
	GroupContact  StyleGroup = "contact"
)

var StyleGroups = []StyleGroup{GroupName, GroupPosition, GroupCompany, GroupContact}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

var Alignments = []Alignment{AlignLeft, AlignCenter, AlignRight}

type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
)

// QRType selects which payload variant the placeholder code is derived from.
type QRType string

const (
	QRWebsite QRType = "website"
	QREmail   QRType = "email"
	QRPhone   QRType = "phone"
	QRAR      QRType = "ar"
	QRSMS     QRType = "sms"
	QREvent   QRType = "event"
)

var QRTypes = []QRType{QRWebsite, QREmail, QRPhone, QRAR, QRSMS, QREvent}

const (
	DefaultFont         = "PT Sans"
	DefaultProfileImage = ImageHandle("https://placehold.co/200x200?text=Photo")
)

// Defaults returns a fresh snapshot holding every field's default value.
func Defaults() Document {
	base := TextStyle{
		Font:  DefaultFont,
		Size:  12,
		Color: "#333333",
		Align: AlignLeft,
	}
	name := base
	name.Size = 24
	name.Color = "#111111"
	name.Bold = true
	position := base
	position.Size = 14
	position.Color = "#555555"
	company := base
	company.Size = 16
	company.Bold = true

	doc := Document{
		Content: Content{
			Name:         "John Doe",
			Position:     "Software Engineer",
			Company:      "Acme Corp",
			Phone:        "+1 (555) 123-4567",
			Email:        "john.doe@example.com",
			Address:      "123 Main Street, Springfield",
			Website:      "www.example.com",
			ProfileImage: DefaultProfileImage,
		},
		Styling: Styling{
			Name:     name,
			Position: position,
			Company:  company,
			Contact:  base,
		},
		Background: Background{
			Type:     BackgroundSolid,
			Color:    "#ffffff",
			Gradient: []string{"#4f46e5", "#06b6d4"},
		},
		Logo: Logo{
			Text:  "LOGO",
			Font:  DefaultFont,
			Size:  18,
			Color: "#111111",
			Bold:  true,
		},
		QR: QR{
			Type:    QRWebsite,
			Website: WebsiteQR{URL: "https://example.com"},
			Email:   EmailQR{Address: "john.doe@example.com"},
			Phone:   PhoneQR{Number: "+1 (555) 123-4567"},
			AR:      ARQR{MarkerURL: "https://example.com/ar"},
			SMS:     SMSQR{Number: "+1 (555) 123-4567"},
			Event:   EventQR{Title: "Meeting"},
		},
	}
	doc.QR.Code = EncodePattern(GeneratePattern(doc.QR))
	return doc
}
