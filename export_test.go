package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/card"
)

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, exportPNG(card.Defaults(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, pngWidth, img.Bounds().Dx())
	assert.Equal(t, pngHeight, img.Bounds().Dy())
}

func TestExportPNG_GradientAndImages(t *testing.T) {
	photo, err := imageHandleFromFile(writeTestPNG(t))
	require.NoError(t, err)

	e := card.New()
	e.UpdateBackground(card.BackgroundPatch{Type: card.Ptr(card.BackgroundGradient), Gradient: []string{"#4f46e5", "#06b6d4", "#fff"}})
	e.UpdateContent(card.ContentPatch{ProfileImage: &photo})
	e.UpdateLogo(card.LogoPatch{Image: &photo})
	e.UpdateTextStyling(card.StylingPatch{Group: card.GroupName, LetterSpacing: card.Ptr(2.0), Align: card.Ptr(card.AlignRight), Font: card.Ptr("Go Mono")})

	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, exportPNG(e.Snapshot(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)

	// Top-left corner sits on the first gradient stop.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.InDelta(t, 0x4f, r>>8, 2)
	assert.InDelta(t, 0x46, g>>8, 2)
	assert.InDelta(t, 0xe5, b>>8, 2)
}

func TestExportPNG_BadPath(t *testing.T) {
	err := exportPNG(card.Defaults(), filepath.Join(t.TempDir(), "missing", "card.png"))
	assert.Error(t, err)
}

func TestExportVisualTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.txt")
	doc := card.Defaults()
	doc.Content.Name = "Ada Lovelace"
	require.NoError(t, exportVisualTXT(doc, CategoryClassic, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "╔")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFontFace(t *testing.T) {
	for _, tc := range []struct {
		family string
		bold   bool
	}{
		{card.DefaultFont, false},
		{card.DefaultFont, true},
		{"Go Mono", false},
		{"Go Mono", true},
	} {
		face, err := fontFace(tc.family, tc.bold, 0)
		require.NoError(t, err)
		assert.NotNil(t, face)
	}
}
