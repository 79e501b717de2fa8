package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/font"
	"github.com/wippyai/hanfont/preview"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	glyphStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err     error
	blob    *font.Blob
	jump    textinput.Model
	geom    font.Geometry
	section font.Section
	bul     int
	slot    int
	jumping bool
}

func newBrowserModel(blob *font.Blob) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "0-359"
	ti.Prompt = "glyph index: "
	ti.CharLimit = 4
	ti.Width = 10

	return &browserModel{
		blob:    blob,
		geom:    blob.Geometry(),
		jump:    ti,
		section: font.Cho,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) index() int {
	i, _ := m.geom.Index(m.section, m.bul, m.slot)
	return i
}

func (m *browserModel) moveSection(delta int) {
	n := len(font.Sections())
	m.section = font.Section((int(m.section) + delta + n) % n)
	m.bul = min(m.bul, m.geom.Buls(m.section)-1)
	m.slot = min(m.slot, m.geom.Slots(m.section)-1)
}

func (m *browserModel) moveSlot(delta int) {
	n := m.geom.Slots(m.section)
	m.slot = (m.slot + delta + n) % n
}

func (m *browserModel) moveBul(delta int) {
	n := m.geom.Buls(m.section)
	m.bul = (m.bul + delta + n) % n
}

func (m *browserModel) applyJump() {
	v := strings.TrimSpace(m.jump.Value())
	index, err := strconv.Atoi(v)
	if err != nil {
		m.err = errors.InvalidInput(errors.PhaseDecode, fmt.Sprintf("%q is not a glyph index", v))
		return
	}
	s, bul, slot, ok := m.geom.Locate(index)
	if !ok {
		m.err = errors.OutOfBounds(errors.PhaseDecode, []string{"glyph"}, index, m.geom.TotalGlyphs())
		return
	}
	m.section, m.bul, m.slot = s, bul, slot
	m.err = nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.jumping {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.applyJump()
			m.jumping = false
			m.jump.Blur()
			return m, nil
		case "esc":
			m.jumping = false
			m.jump.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.moveSlot(-1)
	case "right", "l":
		m.moveSlot(1)
	case "up", "k":
		m.moveBul(-1)
	case "down", "j":
		m.moveBul(1)
	case "tab":
		m.moveSection(1)
	case "shift+tab":
		m.moveSection(-1)
	case "g", ":":
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()
	default:
		return m, nil
	}
	m.err = nil
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hangul Font Browser"))
	b.WriteString(" ")
	b.WriteString(m.blob.Name)
	if m.blob.SizeMismatch() {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  (%d of %d bytes)", m.blob.Len(), m.geom.ExpectedSize())))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s  %s %d/%d  %s %d/%d  %s %d\n",
		sectionStyle.Render(m.section.String()),
		labelStyle.Render("bul"), m.bul, m.geom.Buls(m.section)-1,
		labelStyle.Render("slot"), m.slot, m.geom.Slots(m.section)-1,
		labelStyle.Render("index"), m.index())
	b.WriteString(font.SlotDescription(m.section, m.slot))
	b.WriteString("\n")

	glyph, _ := m.blob.IndexedGlyph(m.section, m.bul, m.slot)
	b.WriteString(glyphStyle.Render(strings.Join(preview.Lines(glyph, m.geom, "██", "  "), "\n")))
	b.WriteString("\n")

	if len(glyph) < m.geom.BytesPerGlyph {
		b.WriteString(errorStyle.Render(fmt.Sprintf("record truncated: %d of %d bytes", len(glyph), m.geom.BytesPerGlyph)))
		b.WriteString("\n")
	}
	if ink := preview.InkBounds(glyph, m.geom); ink.Empty() {
		b.WriteString(labelStyle.Render("blank"))
	} else {
		fmt.Fprintf(&b, "%s %v", labelStyle.Render("ink"), ink)
	}
	b.WriteString("\n\n")

	if m.jumping {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter go • esc cancel"))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("←/→ slot • ↑/↓ bul • tab section • g jump • q quit"))
	return b.String()
}

func runInteractive(blob *font.Blob) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.InvalidInput(errors.PhaseDecode, "interactive mode needs a terminal on stdout")
	}
	p := tea.NewProgram(newBrowserModel(blob), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
