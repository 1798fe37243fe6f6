package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"cardsmith/card"
)

var fontCache = map[string]*truetype.Font{}

// fontFace maps a card font family onto the bundled Go fonts. Families
// with "mono" in the name use Go Mono, everything else Go Regular.
func fontFace(family string, bold bool, size float64) (font.Face, error) {
	var key string
	var data []byte
	mono := strings.Contains(strings.ToLower(family), "mono")
	switch {
	case mono && bold:
		key, data = "gomonobold", gomonobold.TTF
	case mono:
		key, data = "gomono", gomono.TTF
	case bold:
		key, data = "gobold", gobold.TTF
	default:
		key, data = "goregular", goregular.TTF
	}
	f, ok := fontCache[key]
	if !ok {
		parsed, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		fontCache[key] = parsed
		f = parsed
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func toColor(hex string, fallback color.Color) color.Color {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return fallback
}

// exportPNG draws doc onto a card-sized image and writes it to filename.
func exportPNG(doc card.Document, filename string) error {
	dc := gg.NewContext(pngWidth, pngHeight)
	drawBackground(dc, doc.Background)

	margin := 32.0
	if err := drawLogo(dc, doc.Logo, pngWidth-margin, margin); err != nil {
		return err
	}

	photoSize := 96.0
	drawProfile(dc, doc.Content.ProfileImage, margin, margin, photoSize)

	textLeft := margin*2 + photoSize
	textWidth := pngWidth - textLeft - margin
	y := margin + 24
	for _, f := range []card.Field{card.FieldName, card.FieldPosition, card.FieldCompany} {
		h, err := drawField(dc, doc, f, textLeft, y, textWidth)
		if err != nil {
			return err
		}
		y += h + 8
	}

	codeSize := 120.0
	contactWidth := pngWidth - 3*margin - codeSize
	y = pngHeight/2 + 24
	for _, f := range []card.Field{card.FieldPhone, card.FieldEmail, card.FieldAddress, card.FieldWebsite} {
		h, err := drawField(dc, doc, f, margin, y, contactWidth)
		if err != nil {
			return err
		}
		y += h + 6
	}

	if img, err := decodeImageHandle(doc.QR.Code); err == nil {
		drawScaled(dc, img, pngWidth-margin-codeSize, pngHeight-margin-codeSize, codeSize, codeSize)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func drawBackground(dc *gg.Context, bg card.Background) {
	stops := parseStops(bg.Gradient)
	if bg.Type == card.BackgroundGradient && len(stops) >= 2 {
		grad := gg.NewLinearGradient(0, 0, float64(dc.Width()), float64(dc.Height()))
		for i, c := range stops {
			grad.AddColorStop(float64(i)/float64(len(stops)-1), c)
		}
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
		dc.Fill()
		return
	}
	dc.SetColor(toColor(bg.Color, color.White))
	dc.Clear()
}

// drawField writes one text field at the top-left of its box and returns
// the line height used.
func drawField(dc *gg.Context, doc card.Document, f card.Field, x, y, width float64) (float64, error) {
	style, _ := card.StyleOf(doc, f)
	face, err := fontFace(style.Font, style.Bold, style.Size)
	if err != nil {
		return 0, err
	}
	dc.SetFontFace(face)
	dc.SetColor(toColor(style.Color, color.Black))
	drawSpacedString(dc, card.TextOf(doc, f), x, y, width, style.Align, style.LetterSpacing)
	return style.Size, nil
}

func drawSpacedString(dc *gg.Context, text string, x, y, width float64, align card.Alignment, spacing float64) {
	runes := []rune(text)
	total, _ := dc.MeasureString(text)
	if len(runes) > 1 {
		total += spacing * float64(len(runes)-1)
	}
	switch align {
	case card.AlignCenter:
		x += (width - total) / 2
	case card.AlignRight:
		x += width - total
	}
	if spacing == 0 {
		dc.DrawStringAnchored(text, x, y, 0, 1)
		return
	}
	for _, r := range runes {
		s := string(r)
		dc.DrawStringAnchored(s, x, y, 0, 1)
		w, _ := dc.MeasureString(s)
		x += w + spacing
	}
}

func drawLogo(dc *gg.Context, logo card.Logo, right, top float64) error {
	if img, err := decodeImageHandle(logo.Image); err == nil {
		drawScaled(dc, img, right-64, top, 64, 64)
		return nil
	}
	if logo.Text == "" {
		return nil
	}
	face, err := fontFace(logo.Font, logo.Bold, logo.Size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(toColor(logo.Color, color.Black))
	dc.DrawStringAnchored(logo.Text, right, top, 1, 1)
	return nil
}

// drawProfile draws the profile picture clipped to a circle, or an empty
// circle when the handle cannot be decoded locally.
func drawProfile(dc *gg.Context, handle card.ImageHandle, x, y, size float64) {
	r := size / 2
	img, err := decodeImageHandle(handle)
	if err != nil {
		dc.SetColor(color.Gray{Y: 0xcc})
		dc.DrawCircle(x+r, y+r, r)
		dc.Fill()
		return
	}
	dc.Push()
	dc.DrawCircle(x+r, y+r, r)
	dc.Clip()
	drawScaled(dc, img, x, y, size, size)
	dc.ResetClip()
	dc.Pop()
}

func drawScaled(dc *gg.Context, img image.Image, x, y, w, h float64) {
	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	dc.DrawImage(dst, int(x), int(y))
}

// exportVisualTXT writes the preview as plain text.
func exportVisualTXT(doc card.Document, category Category, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	r := lipgloss.NewRenderer(file)
	for _, line := range renderPreview(r, doc, card.FieldNone, category) {
		fmt.Fprintln(file, strings.TrimRight(line, " "))
	}
	return nil
}
