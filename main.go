package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardsmith/card"
)

func main() {
	config := loadConfig()
	logger, closer, err := config.openLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	p := tea.NewProgram(
		initialModel(config, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, logger *slog.Logger) model {
	defaults := card.Defaults()
	if config.Font != "" {
		for _, g := range card.StyleGroups {
			defaults.Styling.Group(g).Font = config.Font
		}
		defaults.Logo.Font = config.Font
	}

	editor := card.New(card.WithLogger(logger), card.WithDefaults(defaults))
	editor.OnChange(func(doc card.Document) {
		logger.Info("document changed", "name", doc.Content.Name, "qr", string(doc.QR.Type))
	})

	return model{
		editor:   editor,
		mode:     ModeNormal,
		category: CategoryCorporate,
		config:   config,
		logger:   logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "esc", "q":
				m.help = false
				m.helpScroll = 0
			case "j", "down":
				m.helpScroll++
			case "k", "up":
				if m.helpScroll > 0 {
					m.helpScroll--
				}
			}
			return m, nil
		}

		switch m.mode {
		case ModeNormal:
			return m.handleNormalKey(msg)
		case ModeEditing:
			return m.handleEditKey(msg)
		case ModeCommand:
			return m.handleCommandKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "?" {
		m.errorMessage = ""
		m.successMessage = ""
	}

	switch key {
	case "q", "ctrl+c":
		if m.config.Confirmations && m.editor.CanUndo() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "tab", "shift+tab", "j", "k", "up", "down", "esc":
		m.handleNavigation(key)
	case "e", "enter":
		if m.requireSelection() {
			m.mode = ModeEditing
			m.editText = []rune(m.editor.SelectedText())
			m.editCursorPos = len(m.editText)
		}
	case "d":
		if !m.requireSelection() {
			break
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteContent
			break
		}
		m.editor.DeleteSelectedFieldContent()
	case "b":
		if style, ok := m.selectedStyle(); ok {
			m.editor.StyleSelected(card.StylingPatch{Bold: card.Ptr(!style.Bold)})
		}
	case "+", "=":
		m.adjustSize(1)
	case "-":
		m.adjustSize(-1)
	case "a":
		if style, ok := m.selectedStyle(); ok {
			m.editor.StyleSelected(card.StylingPatch{Align: card.Ptr(cycle(card.Alignments, style.Align, 1))})
		}
	case "f":
		if style, ok := m.selectedStyle(); ok {
			m.editor.StyleSelected(card.StylingPatch{Font: card.Ptr(cycle(fontChoices, style.Font, 1))})
		}
	case "c":
		if style, ok := m.selectedStyle(); ok {
			m.editor.StyleSelected(card.StylingPatch{Color: card.Ptr(cycle(colorChoices, style.Color, 1))})
		}
	case "[", "]":
		if style, ok := m.selectedStyle(); ok {
			spacing := style.LetterSpacing + spacingStep
			if key == "[" {
				spacing = style.LetterSpacing - spacingStep
			}
			if spacing < 0 {
				spacing = 0
			}
			m.editor.StyleSelected(card.StylingPatch{LetterSpacing: &spacing})
		}
	case "g":
		next := card.BackgroundGradient
		if m.editor.Snapshot().Background.Type == card.BackgroundGradient {
			next = card.BackgroundSolid
		}
		m.editor.UpdateBackground(card.BackgroundPatch{Type: &next})
	case "G":
		current := m.editor.Snapshot().Background.Color
		m.editor.UpdateBackground(card.BackgroundPatch{Color: card.Ptr(cycle(backgroundChoices, current, 1))})
	case "t":
		current := m.editor.Snapshot().QR.Type
		m.editor.UpdateQR(card.QRPatch{Type: card.Ptr(cycle(card.QRTypes, current, 1))})
	case "l":
		m.category = cycle(categories, m.category, 1)
	case "u":
		m.undo()
	case "ctrl+r":
		m.redo()
	case "R":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
			break
		}
		m.reset()
	case "p", "ctrl+v":
		m.paste()
	case "y":
		if m.requireSelection() {
			if err := writeClipboardText(m.editor.SelectedText()); err != nil {
				m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.successMessage = "Copied"
			}
		}
	case ":":
		m.mode = ModeCommand
		m.commandText = nil
		m.commandCursorPos = 0
	case "s", "x":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		if key == "x" {
			m.fileOp = FileOpSaveVisualTXT
		}
		m.filename = exportBaseName(m.editor.Snapshot())
	}
	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.editText = nil
		m.editCursorPos = 0
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(string(m.editText))
		if text != m.editor.SelectedText() {
			m.editor.SetSelectedText(text)
		}
		m.mode = ModeNormal
		m.editText = nil
		m.editCursorPos = 0
		return m, nil
	case tea.KeyCtrlV:
		if text, err := readClipboardText(); err == nil {
			m.editText, m.editCursorPos, _ = editLine(m.editText, m.editCursorPos, "", []rune(cleanClipboardText(text)))
		}
		return m, nil
	}
	m.editText, m.editCursorPos, _ = editLine(m.editText, m.editCursorPos, msg.String(), keyRunes(msg))
	return m, nil
}

func (m model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.commandText = nil
		return m, nil
	case tea.KeyEnter:
		if err := m.runCommand(string(m.commandText)); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Applied " + string(m.commandText)
		}
		m.mode = ModeNormal
		m.commandText = nil
		m.commandCursorPos = 0
		return m, nil
	}
	m.commandText, m.commandCursorPos, _ = editLine(m.commandText, m.commandCursorPos, msg.String(), keyRunes(msg))
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "Filename required"
			return m, nil
		}
		ext := ".png"
		if m.fileOp == FileOpSaveVisualTXT {
			ext = ".txt"
		}
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			name += ext
		}
		path, err := m.config.GetSavePath(name)
		if err != nil {
			m.errorMessage = err.Error()
			m.logger.Error("export failed", "err", err)
			m.mode = ModeNormal
			return m, nil
		}
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.pendingPath = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.export(path)
		m.mode = ModeNormal
		return m, nil
	}
	text := []rune(m.filename)
	text, _, _ = editLine(text, len(text), msg.String(), keyRunes(msg))
	m.filename = string(text)
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteContent:
			m.editor.DeleteSelectedFieldContent()
		case ConfirmReset:
			m.reset()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.export(m.pendingPath)
			m.pendingPath = ""
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.pendingPath = ""
	}
	return m, nil
}

func keyRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}

func (m *model) requireSelection() bool {
	if m.editor.Selection() == card.FieldNone {
		m.errorMessage = "Select a field first (tab)"
		return false
	}
	return true
}

func (m *model) selectedStyle() (card.TextStyle, bool) {
	if !m.requireSelection() {
		return card.TextStyle{}, false
	}
	return m.editor.SelectedStyle()
}

func (m *model) adjustSize(delta float64) {
	style, ok := m.selectedStyle()
	if !ok {
		return
	}
	size := style.Size + delta
	if !sizeInRange(size) {
		m.errorMessage = sizeRangeMessage()
		return
	}
	m.editor.StyleSelected(card.StylingPatch{Size: &size})
}

func (m *model) paste() {
	if !m.requireSelection() {
		return
	}
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		m.errorMessage = "Clipboard is empty"
		return
	}
	m.editor.SetSelectedText(text)
	m.successMessage = "Pasted"
}

func sizeInRange(size float64) bool {
	return size >= minFontSize && size <= maxFontSize
}

func sizeRangeMessage() string {
	return fmt.Sprintf("Size must stay within %d-%d", minFontSize, maxFontSize)
}

// runCommand applies "group.key=value", e.g. "qr.subject=Hello" or
// "style.contact.size=11". "select <field>" moves the selection.
func (m *model) runCommand(text string) error {
	if rest, ok := strings.CutPrefix(strings.TrimSpace(text), "select "); ok {
		f, ok := card.ParseField(rest)
		if !ok {
			return fmt.Errorf("unknown field %q", strings.TrimSpace(rest))
		}
		m.editor.Select(f)
		return nil
	}

	path, value, ok := strings.Cut(text, "=")
	path = strings.TrimSpace(path)
	dot := strings.LastIndex(path, ".")
	if !ok || dot <= 0 || dot == len(path)-1 {
		return fmt.Errorf("expected group.key=value")
	}
	group, key := path[:dot], path[dot+1:]
	value = strings.TrimSpace(value)

	if isSizeKey(group, key) {
		if size, err := strconv.ParseFloat(value, 64); err == nil && !sizeInRange(size) {
			return errors.New(sizeRangeMessage())
		}
	}

	if isImageKey(group, key) {
		resolved, err := m.resolveImageValue(value)
		if err != nil {
			return err
		}
		value = resolved
	}

	if !m.editor.Apply(group, map[string]string{key: value}) {
		return fmt.Errorf("nothing to change for %s", path)
	}
	return nil
}

func isSizeKey(group, key string) bool {
	key = strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(key))
	if key != "size" && key != "fontsize" {
		return false
	}
	group = strings.ToLower(strings.TrimSpace(group))
	return group == "logo" || strings.HasPrefix(group, "style.")
}

func isImageKey(group, key string) bool {
	key = strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(key))
	switch strings.ToLower(group) {
	case "content":
		return key == "profile" || key == "profileimage"
	case "logo":
		return key == "image" || key == "logoimage"
	}
	return false
}

func (m *model) export(path string) {
	doc := m.editor.Snapshot()
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = exportPNG(doc, path)
	case FileOpSaveVisualTXT:
		err = exportVisualTXT(doc, m.category, path)
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		m.logger.Error("export failed", "path", path, "err", err)
		return
	}
	m.successMessage = "Saved " + path
	m.logger.Info("exported", "path", path)
}

func exportBaseName(doc card.Document) string {
	name := strings.ToLower(strings.Join(strings.Fields(doc.Content.Name), "-"))
	if name == "" {
		return "card"
	}
	return filepath.Base(name)
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	lines := renderPreview(lipgloss.DefaultRenderer(), m.editor.Snapshot(), m.editor.Selection(), m.category)
	lines = append(lines, "", m.statusLine())
	if prompt := m.promptLine(); prompt != "" {
		lines = append(lines, prompt)
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	selected := string(m.editor.Selection())
	if selected == "" {
		selected = "none"
	}
	cursor, length := m.editor.History()
	status := statusStyle.Render(fmt.Sprintf("%s | field: %s | template: %s | history %d/%d | ? help",
		m.modeString(), selected, m.category, cursor+1, length))
	switch {
	case m.errorMessage != "":
		status += "  " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		status += "  " + successStyle.Render(m.successMessage)
	}
	return status
}

func (m model) promptLine() string {
	switch m.mode {
	case ModeEditing:
		return renderInput(string(m.editor.Selection())+": ", m.editText, m.editCursorPos)
	case ModeCommand:
		return renderInput(":", m.commandText, m.commandCursorPos)
	case ModeFileInput:
		text := []rune(m.filename)
		return renderInput("Export as: ", text, len(text))
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmDeleteContent:
			return fmt.Sprintf("Clear %s? (y/n)", m.editor.Selection())
		case ConfirmReset:
			return "Reset the card and its history? (y/n)"
		case ConfirmQuit:
			return "Quit? Unsaved design will be lost (y/n)"
		case ConfirmOverwriteFile:
			return fmt.Sprintf("Overwrite %s? (y/n)", m.pendingPath)
		}
	}
	return ""
}

func renderInput(prompt string, text []rune, pos int) string {
	if pos >= len(text) {
		return prompt + string(text) + cursorStyle.Render(" ")
	}
	return prompt + string(text[:pos]) + cursorStyle.Render(string(text[pos])) + string(text[pos+1:])
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeCommand:
		return "COMMAND"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Cardsmith Help",
		"==============",
		"",
		"Fields:",
		"-------",
		"  tab/j/↓          Select next field",
		"  shift+tab/k/↑    Select previous field",
		"  esc              Clear selection",
		"  e/enter          Edit text of selected field",
		"  d                Clear selected field",
		"  p/ctrl+v         Paste clipboard into selected field",
		"  y                Copy selected field",
		"",
		"Styling (selected field):",
		"-------------------------",
		"  b                Toggle bold",
		"  +/-              Font size up/down",
		"  a                Cycle alignment",
		"  f                Cycle font",
		"  c                Cycle color",
		"  [ / ]            Letter spacing down/up",
		"",
		"Card:",
		"-----",
		"  g                Toggle solid/gradient background",
		"  G                Cycle background color",
		"  t                Cycle QR type",
		"  l                Cycle template",
		"  :                Command, e.g. :qr.subject=Hello or :logo.image=~/logo.png",
		"  :select <field>  Select a field by name",
		"",
		"History:",
		"--------",
		"  u                Undo",
		"  ctrl+r           Redo",
		"  R                Reset card",
		"",
		"Export:",
		"-------",
		"  s                Export PNG",
		"  x                Export text preview",
		"",
		"  q                Quit",
		"  ?                Toggle help",
	}

	start := m.helpScroll
	if start > len(helpLines)-1 {
		start = len(helpLines) - 1
	}
	end := len(helpLines)
	if m.height > 0 && start+m.height < end {
		end = start + m.height
	}
	return strings.Join(helpLines[start:end], "\n")
}
