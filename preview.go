package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"cardsmith/card"
)

// renderPreview paints doc as terminal lines. The renderer decides the
// color profile, so a renderer bound to a plain file yields plain text.
func renderPreview(r *lipgloss.Renderer, doc card.Document, selected card.Field, category Category) []string {
	inner := previewWidth
	if category == CategoryMinimal {
		inner = previewWidth - 8
	}

	var rows []string
	logo := doc.Logo.Text
	if logo == "" && doc.Logo.Image != "" {
		logo = "[logo]"
	}
	logoStyle := r.NewStyle().Width(inner).Align(lipgloss.Right).Foreground(lipgloss.Color(doc.Logo.Color)).Bold(doc.Logo.Bold)
	rows = append(rows, logoStyle.Render(logo))

	for _, f := range []card.Field{card.FieldName, card.FieldPosition, card.FieldCompany} {
		rows = append(rows, renderField(r, doc, f, selected, inner))
	}
	rows = append(rows, "")

	var contact []string
	for _, f := range []card.Field{card.FieldPhone, card.FieldEmail, card.FieldAddress, card.FieldWebsite} {
		contact = append(contact, renderField(r, doc, f, selected, inner-patternWidth()-2))
	}
	code := renderPattern(card.GeneratePattern(doc.QR))
	switch category {
	case CategoryCreative, CategoryModern:
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(code, "\n"), "  ", strings.Join(contact, "\n")))
	case CategoryMinimal:
		rows = append(rows, contact...)
	default:
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(contact, "\n"), "  ", strings.Join(code, "\n")))
	}

	body := strings.Split(strings.Join(rows, "\n"), "\n")
	shades := backgroundShades(doc.Background, len(body))
	for i, line := range body {
		body[i] = r.NewStyle().Width(inner).Background(lipgloss.Color(shades[i])).Render(line)
	}

	frame := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1)
	if category == CategoryClassic {
		frame = frame.Border(lipgloss.DoubleBorder())
	}
	return strings.Split(frame.Render(strings.Join(body, "\n")), "\n")
}

func renderField(r *lipgloss.Renderer, doc card.Document, f, selected card.Field, width int) string {
	style, _ := card.StyleOf(doc, f)
	text := spaceLetters(card.TextOf(doc, f), style.LetterSpacing)
	if text == "" && f == selected {
		text = "<" + string(f) + ">"
	}
	s := r.NewStyle().
		Width(width).
		MaxWidth(width).
		Align(alignPosition(style.Align)).
		Foreground(lipgloss.Color(style.Color)).
		Bold(style.Bold)
	if f == selected {
		s = s.Reverse(true)
	}
	return s.Render(text)
}

func alignPosition(a card.Alignment) lipgloss.Position {
	switch a {
	case card.AlignCenter:
		return lipgloss.Center
	case card.AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Left
}

// spaceLetters approximates letter spacing in cells.
func spaceLetters(text string, spacing float64) string {
	gap := int(math.Round(spacing))
	if gap <= 0 || text == "" {
		return text
	}
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteRune(r)
	}
	return b.String()
}

func patternWidth() int {
	return card.PatternSize * 2
}

func renderPattern(p card.Pattern) []string {
	lines := make([]string, card.PatternSize)
	for row := 0; row < card.PatternSize; row++ {
		var b strings.Builder
		for col := 0; col < card.PatternSize; col++ {
			if p.Filled(row, col) {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		lines[row] = b.String()
	}
	return lines
}

// backgroundShades returns one hex color per row. Gradients are blended
// top to bottom across the stops.
func backgroundShades(bg card.Background, rows int) []string {
	shades := make([]string, rows)
	stops := parseStops(bg.Gradient)
	if bg.Type != card.BackgroundGradient || len(stops) < 2 {
		for i := range shades {
			shades[i] = bg.Color
		}
		return shades
	}
	for i := range shades {
		t := 0.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		shades[i] = blendStops(stops, t).Hex()
	}
	return shades
}

func parseStops(hexes []string) []colorful.Color {
	var stops []colorful.Color
	for _, h := range hexes {
		if c, ok := parseHexColor(h); ok {
			stops = append(stops, c)
		}
	}
	return stops
}

func blendStops(stops []colorful.Color, t float64) colorful.Color {
	segments := float64(len(stops) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendRgb(stops[i+1], pos-float64(i))
}

// parseHexColor accepts #rgb and #rrggbb.
func parseHexColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
