package card

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}

// ContentPatch is a sparse update of the content fields. Nil means unchanged.
type ContentPatch struct {
	Name         *string
	Position     *string
	Company      *string
	Phone        *string
	Email        *string
	Address      *string
	Website      *string
	ProfileImage *ImageHandle
}

func (p ContentPatch) apply(c *Content) {
	set(&c.Name, p.Name)
	set(&c.Position, p.Position)
	set(&c.Company, p.Company)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
	set(&c.Address, p.Address)
	set(&c.Website, p.Website)
	set(&c.ProfileImage, p.ProfileImage)
}

// StylingPatch is a sparse update of one style group's typography.
type StylingPatch struct {
	Group         StyleGroup
	Font          *string
	Size          *float64
	Color         *string
	Bold          *bool
	LetterSpacing *float64
	Align         *Alignment
}

func (p StylingPatch) apply(s *Styling) bool {
	ts := s.Group(p.Group)
	if ts == nil {
		return false
	}
	set(&ts.Font, p.Font)
	set(&ts.Size, p.Size)
	set(&ts.Color, p.Color)
	set(&ts.Bold, p.Bold)
	set(&ts.LetterSpacing, p.LetterSpacing)
	set(&ts.Align, p.Align)
	return true
}

type BackgroundPatch struct {
	Type     *BackgroundType
	Color    *string
	Gradient []string
}

func (p BackgroundPatch) apply(b *Background) {
	set(&b.Type, p.Type)
	set(&b.Color, p.Color)
	if p.Gradient != nil {
		b.Gradient = append([]string(nil), p.Gradient...)
	}
}

type LogoPatch struct {
	Image *ImageHandle
	Text  *string
	Font  *string
	Size  *float64
	Color *string
	Bold  *bool
}

func (p LogoPatch) apply(l *Logo) {
	set(&l.Image, p.Image)
	set(&l.Text, p.Text)
	set(&l.Font, p.Font)
	set(&l.Size, p.Size)
	set(&l.Color, p.Color)
	set(&l.Bold, p.Bold)
}

// QRPatch updates the active type and/or any variant's payload. Payloads of
// inactive variants are kept as they are.
type QRPatch struct {
	Type          *QRType
	URL           *string
	EmailAddress  *string
	EmailSubject  *string
	EmailBody     *string
	PhoneNumber   *string
	ARMarkerURL   *string
	SMSNumber     *string
	SMSMessage    *string
	EventTitle    *string
	EventLocation *string
	EventStart    *string
	EventEnd      *string
}

func (p QRPatch) apply(q *QR) {
	if p.Type != nil && validQRType(*p.Type) {
		q.Type = *p.Type
	}
	set(&q.Website.URL, p.URL)
	set(&q.Email.Address, p.EmailAddress)
	set(&q.Email.Subject, p.EmailSubject)
	set(&q.Email.Body, p.EmailBody)
	set(&q.Phone.Number, p.PhoneNumber)
	set(&q.AR.MarkerURL, p.ARMarkerURL)
	set(&q.SMS.Number, p.SMSNumber)
	set(&q.SMS.Message, p.SMSMessage)
	set(&q.Event.Title, p.EventTitle)
	set(&q.Event.Location, p.EventLocation)
	set(&q.Event.Start, p.EventStart)
	set(&q.Event.End, p.EventEnd)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func validQRType(t QRType) bool {
	for _, known := range QRTypes {
		if known == t {
			return true
		}
	}
	return false
}

// normalizeKey folds "letter_spacing", "letter-spacing" and "letterSpacing"
// to the same key.
func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.ReplaceAll(k, "_", "")
	return strings.ReplaceAll(k, "-", "")
}

// ParseContentPatch builds a ContentPatch from loosely keyed values.
// Unknown keys are ignored. The second result is the number of keys used.
//
// Keys are visited in sorted order, so when two aliases of the same field
// are present the one sorting last wins ("title" over "position").
func ParseContentPatch(fields map[string]string) (ContentPatch, int) {
	var p ContentPatch
	n := 0
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		switch normalizeKey(k) {
		case "name":
			p.Name = &v
		case "position", "title":
			p.Position = &v
		case "company", "companyname":
			p.Company = &v
		case "phone":
			p.Phone = &v
		case "email":
			p.Email = &v
		case "address":
			p.Address = &v
		case "website":
			p.Website = &v
		case "profile", "profileimage":
			p.ProfileImage = Ptr(ImageHandle(v))
		default:
			continue
		}
		n++
	}
	return p, n
}

// ParseStylingPatch builds a StylingPatch for group. Values that do not
// parse are ignored like unknown keys.
func ParseStylingPatch(group StyleGroup, fields map[string]string) (StylingPatch, int) {
	p := StylingPatch{Group: group}
	n := 0
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		switch normalizeKey(k) {
		case "font", "fontfamily":
			p.Font = &v
		case "size", "fontsize":
			f, ok := parseFloat(v)
			if !ok {
				continue
			}
			p.Size = &f
		case "color":
			p.Color = &v
		case "bold":
			b, ok := parseBool(v)
			if !ok {
				continue
			}
			p.Bold = &b
		case "spacing", "letterspacing":
			f, ok := parseFloat(v)
			if !ok {
				continue
			}
			p.LetterSpacing = &f
		case "align", "alignment":
			a, ok := parseAlignment(v)
			if !ok {
				continue
			}
			p.Align = &a
		default:
			continue
		}
		n++
	}
	return p, n
}

func ParseBackgroundPatch(fields map[string]string) (BackgroundPatch, int) {
	var p BackgroundPatch
	n := 0
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		switch normalizeKey(k) {
		case "type":
			t := BackgroundType(strings.ToLower(strings.TrimSpace(v)))
			if t != BackgroundSolid && t != BackgroundGradient {
				continue
			}
			p.Type = &t
		case "color":
			p.Color = &v
		case "gradient", "colors":
			var stops []string
			for _, c := range strings.Split(v, ",") {
				if c = strings.TrimSpace(c); c != "" {
					stops = append(stops, c)
				}
			}
			if len(stops) == 0 {
				continue
			}
			p.Gradient = stops
		default:
			continue
		}
		n++
	}
	return p, n
}

func ParseLogoPatch(fields map[string]string) (LogoPatch, int) {
	var p LogoPatch
	n := 0
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		switch normalizeKey(k) {
		case "image", "logoimage":
			p.Image = Ptr(ImageHandle(v))
		case "text", "logotext":
			p.Text = &v
		case "font":
			p.Font = &v
		case "size":
			f, ok := parseFloat(v)
			if !ok {
				continue
			}
			p.Size = &f
		case "color":
			p.Color = &v
		case "bold":
			b, ok := parseBool(v)
			if !ok {
				continue
			}
			p.Bold = &b
		default:
			continue
		}
		n++
	}
	return p, n
}

func ParseQRPatch(fields map[string]string) (QRPatch, int) {
	var p QRPatch
	n := 0
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		switch normalizeKey(k) {
		case "type":
			t := QRType(strings.ToLower(strings.TrimSpace(v)))
			if !validQRType(t) {
				continue
			}
			p.Type = &t
		case "url", "website":
			p.URL = &v
		case "email", "address":
			p.EmailAddress = &v
		case "subject":
			p.EmailSubject = &v
		case "body":
			p.EmailBody = &v
		case "phone":
			p.PhoneNumber = &v
		case "marker", "arurl":
			p.ARMarkerURL = &v
		case "smsnumber":
			p.SMSNumber = &v
		case "smsmessage", "message":
			p.SMSMessage = &v
		case "title":
			p.EventTitle = &v
		case "location":
			p.EventLocation = &v
		case "start":
			p.EventStart = &v
		case "end":
			p.EventEnd = &v
		default:
			continue
		}
		n++
	}
	return p, n
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseBool(s string) (bool, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return b, true
}

func parseAlignment(s string) (Alignment, bool) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Alignments {
		if known == a {
			return a, true
		}
	}
	return "", false
}
