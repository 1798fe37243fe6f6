package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/card"
)

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ada Lovelace", "Ada Lovelace"},
		{"line breaks", "Ada\r\nLovelace\t ", "Ada Lovelace"},
		{"html", "<div>Ada &amp; Co</div>", "Ada & Co"},
		{"html named entities", "<div>Caf&eacute; &copy; &#169;</div>", "Café © ©"},
		{"html nested", "<div><span>Ada</span><span>Lovelace</span></div>", "Ada Lovelace"},
		{"html script", "<div><script>alert(1)</script>Ada</div>", "Ada"},
		{"rtf", `{\rtf1\ansi Ada}`, "Ada"},
		{"control chars", "Ada\x07 Byron", "Ada Byron"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanClipboardText(tt.in))
		})
	}
}

func TestEditLine(t *testing.T) {
	text, pos, ok := editLine([]rune("Ada"), 3, "", []rune(" L"))
	require.True(t, ok)
	assert.Equal(t, "Ada L", string(text))
	assert.Equal(t, 5, pos)

	text, pos, _ = editLine(text, pos, "left", nil)
	text, pos, _ = editLine(text, pos, "backspace", nil)
	assert.Equal(t, "AdaL", string(text))
	assert.Equal(t, 3, pos)

	text, pos, _ = editLine(text, pos, "delete", nil)
	assert.Equal(t, "Ada", string(text))

	_, pos, _ = editLine(text, pos, "home", nil)
	assert.Equal(t, 0, pos)
	_, pos, _ = editLine(text, 0, "backspace", nil)
	assert.Equal(t, 0, pos)

	_, _, ok = editLine(text, 0, "tab", nil)
	assert.False(t, ok)

	text, _, _ = editLine([]rune("x"), 1, "home", []rune("home"))
	assert.Equal(t, "xhome", string(text))
}

func TestImageHandleFromFile(t *testing.T) {
	path := writeTestPNG(t)
	handle, err := imageHandleFromFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(handle), "data:image/png;base64,"))

	img, err := decodeImageHandle(handle)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	img, err = decodeImageHandle(card.ImageHandle(path))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestImageHandleFromFile_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	_, err := imageHandleFromFile(path)
	assert.Error(t, err)
}

func TestDecodeImageHandle_Unsupported(t *testing.T) {
	for _, h := range []card.ImageHandle{"", card.DefaultProfileImage, "data:image/png,raw", "data:image/png;base64,@@@"} {
		_, err := decodeImageHandle(h)
		assert.Error(t, err, h)
	}
}

func TestStepField(t *testing.T) {
	assert.Equal(t, card.FieldName, stepField(card.FieldNone, 1))
	assert.Equal(t, card.FieldWebsite, stepField(card.FieldNone, -1))
	assert.Equal(t, card.FieldName, stepField(card.FieldWebsite, 1))
	assert.Equal(t, card.FieldWebsite, stepField(card.FieldName, -1))
	assert.Equal(t, card.FieldCompany, stepField(card.FieldPosition, 1))
}

func TestCycle(t *testing.T) {
	assert.Equal(t, card.AlignCenter, cycle(card.Alignments, card.AlignLeft, 1))
	assert.Equal(t, card.AlignRight, cycle(card.Alignments, card.AlignLeft, -1))
	assert.Equal(t, card.AlignLeft, cycle(card.Alignments, card.Alignment("justify"), 1))
}
