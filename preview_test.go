package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/card"
)

func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(&bytes.Buffer{})
}

func TestRenderPreview(t *testing.T) {
	out := strings.Join(renderPreview(plainRenderer(), card.Defaults(), card.FieldNone, CategoryCorporate), "\n")
	for _, want := range []string{"LOGO", "John Doe", "Software Engineer", "Acme Corp", "john.doe@example.com", "██"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPreview_MinimalHidesCode(t *testing.T) {
	out := strings.Join(renderPreview(plainRenderer(), card.Defaults(), card.FieldNone, CategoryMinimal), "\n")
	assert.Contains(t, out, "John Doe")
	assert.NotContains(t, out, "█")
}

func TestRenderPreview_EmptySelectedFieldShowsPlaceholder(t *testing.T) {
	doc := card.Defaults()
	doc.Content.Email = ""
	out := strings.Join(renderPreview(plainRenderer(), doc, card.FieldEmail, CategoryCorporate), "\n")
	assert.Contains(t, out, "<email>")
}

func TestSpaceLetters(t *testing.T) {
	assert.Equal(t, "a b c", spaceLetters("abc", 1))
	assert.Equal(t, "a  b", spaceLetters("ab", 2))
	assert.Equal(t, "abc", spaceLetters("abc", 0.4))
	assert.Equal(t, "", spaceLetters("", 3))
}

func TestRenderPattern(t *testing.T) {
	var p card.Pattern
	p[0] = true
	lines := renderPattern(p)
	require.Len(t, lines, card.PatternSize)
	assert.Equal(t, "██"+strings.Repeat(" ", 8), lines[0])
	assert.Equal(t, strings.Repeat(" ", 10), lines[1])
}

func TestBackgroundShades(t *testing.T) {
	solid := backgroundShades(card.Background{Type: card.BackgroundSolid, Color: "#ffffff", Gradient: []string{"#000000", "#ffffff"}}, 2)
	assert.Equal(t, []string{"#ffffff", "#ffffff"}, solid)

	grad := backgroundShades(card.Background{Type: card.BackgroundGradient, Gradient: []string{"#000000", "#ffffff"}}, 3)
	assert.Equal(t, []string{"#000000", "#808080", "#ffffff"}, grad)

	fallback := backgroundShades(card.Background{Type: card.BackgroundGradient, Color: "#123456", Gradient: []string{"#000000"}}, 1)
	assert.Equal(t, []string{"#123456"}, fallback)
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#fff")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", c.Hex())

	c, ok = parseHexColor("4f46e5")
	require.True(t, ok)
	assert.Equal(t, "#4f46e5", c.Hex())

	_, ok = parseHexColor("nope")
	assert.False(t, ok)
}
