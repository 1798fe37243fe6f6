package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cardsmith/card"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div") || strings.Contains(text, "<span"))
}

// extractTextFromHTML returns the visible text of an HTML fragment,
// skipping script and style elements.
func extractTextFromHTML(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return html.UnescapeString(markup)
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

// cleanClipboardText turns clipboard contents into a single card line:
// markup is stripped, control characters dropped and line breaks folded
// into spaces.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	if isHTML(text) {
		text = extractTextFromHTML(text)
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result.WriteRune(' ')
		case r >= 32:
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' || r == '}' {
			continue
		}
		if r == '\\' {
			if i+1 < len(runes) {
				next := runes[i+1]
				if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
					i++
					for i < len(runes) {
						if runes[i] == ' ' || runes[i] == '\\' || runes[i] == '{' || runes[i] == '}' {
							if runes[i] == ' ' {
								i++
							}
							break
						}
						i++
					}
					i--
					continue
				} else if next == '\\' || next == '{' || next == '}' {
					result.WriteRune(next)
					i++
					continue
				}
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// imageHandleFromFile reads a local image and wraps it in a data URI. It
// stands in for the upload flow that hands image handles to the editor.
func imageHandleFromFile(path string) (card.ImageHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}
	return card.ImageHandle("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)), nil
}

// resolveImageValue converts a local path typed in a command into a data
// URI. Anything else (URLs, existing data URIs) passes through untouched.
func (m *model) resolveImageValue(value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "data:") || strings.Contains(value, "://") {
		return value, nil
	}
	path := expandPath(value, homeDir())
	handle, err := imageHandleFromFile(path)
	if err != nil {
		return "", err
	}
	return string(handle), nil
}

// decodeImageHandle decodes data URIs and local file paths. Remote URLs are
// not fetched.
func decodeImageHandle(h card.ImageHandle) (image.Image, error) {
	s := string(h)
	switch {
	case s == "":
		return nil, fmt.Errorf("empty image handle")
	case strings.HasPrefix(s, "data:"):
		comma := strings.IndexByte(s, ',')
		if comma < 0 || !strings.HasSuffix(s[:comma], ";base64") {
			return nil, fmt.Errorf("unsupported data URI")
		}
		raw, err := base64.StdEncoding.DecodeString(s[comma+1:])
		if err != nil {
			return nil, fmt.Errorf("decode data URI: %w", err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		return img, err
	case strings.Contains(s, "://"):
		return nil, fmt.Errorf("remote image %s not loaded", s)
	default:
		file, err := os.Open(s)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		img, _, err := image.Decode(file)
		return img, err
	}
}

func homeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return dir
}

// editLine applies a typed text or a line-editing key to text at pos.
// Typed runes win over the key name. It reports false for keys it does not
// handle.
func editLine(text []rune, pos int, key string, runes []rune) ([]rune, int, bool) {
	if len(runes) > 0 {
		inserted := make([]rune, 0, len(text)+len(runes))
		inserted = append(inserted, text[:pos]...)
		inserted = append(inserted, runes...)
		inserted = append(inserted, text[pos:]...)
		return inserted, pos + len(runes), true
	}
	switch key {
	case "left":
		if pos > 0 {
			pos--
		}
	case "right":
		if pos < len(text) {
			pos++
		}
	case "home", "ctrl+a":
		pos = 0
	case "end", "ctrl+e":
		pos = len(text)
	case "backspace":
		if pos > 0 {
			text = append(text[:pos-1:pos-1], text[pos:]...)
			pos--
		}
	case "delete":
		if pos < len(text) {
			text = append(text[:pos:pos], text[pos+1:]...)
		}
	default:
		return text, pos, false
	}
	return text, pos, true
}
