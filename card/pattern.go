package card

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

const (
	PatternSize  = 5
	patternCells = PatternSize * PatternSize

	moduleSize = 8
	quietZone  = 1
)

// Pattern is the decorative placeholder code, row-major. It is not a
// scannable QR code.
type Pattern [patternCells]bool

// Filled reports whether the cell at row, col is set.
func (p Pattern) Filled(row, col int) bool {
	if row < 0 || row >= PatternSize || col < 0 || col >= PatternSize {
		return false
	}
	return p[row*PatternSize+col]
}

// Canonical serializes the live QR variant. Inactive variants do not
// contribute.
func Canonical(q QR) string {
	var parts []string
	switch q.Type {
	case QRWebsite:
		parts = []string{q.Website.URL}
	case QREmail:
		parts = []string{q.Email.Address, q.Email.Subject, q.Email.Body}
	case QRPhone:
		parts = []string{q.Phone.Number}
	case QRAR:
		parts = []string{q.AR.MarkerURL}
	case QRSMS:
		parts = []string{q.SMS.Number, q.SMS.Message}
	case QREvent:
		parts = []string{q.Event.Title, q.Event.Location, q.Event.Start, q.Event.End}
	}
	return string(q.Type) + ":" + strings.Join(parts, "|")
}

// GeneratePattern folds the canonical form into a checksum and reads one
// bit of its low byte per cell.
func GeneratePattern(q QR) Pattern {
	var acc int
	for _, r := range Canonical(q) {
		acc += int(r)
	}
	var p Pattern
	for i := range p {
		p[i] = (acc>>(i%8))&1 == 1
	}
	return p
}

// EncodePattern rasterizes p into a PNG data URI.
func EncodePattern(p Pattern) ImageHandle {
	side := (PatternSize + 2*quietZone) * moduleSize
	dc := gg.NewContext(side, side)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	for row := 0; row < PatternSize; row++ {
		for col := 0; col < PatternSize; col++ {
			if !p.Filled(row, col) {
				continue
			}
			x := float64((col + quietZone) * moduleSize)
			y := float64((row + quietZone) * moduleSize)
			dc.DrawRectangle(x, y, moduleSize, moduleSize)
		}
	}
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return ""
	}
	return ImageHandle("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
}
