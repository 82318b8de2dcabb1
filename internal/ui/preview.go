package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Preview dimensions used until the terminal reports its size.
const (
	defaultPreviewWidth  = 80
	defaultPreviewHeight = 20
	previewChromeHeight  = 4 // title, blank line, blank line, help
)

// PreviewAction is what the user chose to do after reviewing the text.
type PreviewAction int

const (
	// PreviewDiscard means the user closed the preview without saving.
	PreviewDiscard PreviewAction = iota
	// PreviewSave means the user asked to save the text.
	PreviewSave
)

type previewKeyMap struct {
	Save key.Binding
	Quit key.Binding
	Up   key.Binding
	Down key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.Up, k.Down}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		Save: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "save LICENSE.txt")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "discard")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	}
}

// previewModel is the bubbletea Model for the scrollable license preview.
type previewModel struct {
	theme    *Theme
	title    string
	content  string
	viewport viewport.Model
	help     help.Model
	keys     previewKeyMap
	action   PreviewAction
	done     bool
}

func newPreviewModel(theme *Theme, title, content string) previewModel {
	vp := viewport.New(defaultPreviewWidth, defaultPreviewHeight)
	vp.SetContent(content)
	return previewModel{
		theme:    theme,
		title:    title,
		content:  content,
		viewport: vp,
		help:     help.New(),
		keys:     newPreviewKeyMap(),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-previewChromeHeight)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.action = PreviewSave
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.action = PreviewDiscard
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if m.done {
		return ""
	}
	title := m.theme.style(m.theme.Colors.Primary).Bold(!m.theme.NoColor).Render(m.title)
	scroll := m.theme.style(m.theme.Colors.Muted).Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", scroll)
	return header + "\n\n" + m.viewport.View() + "\n\n" + m.help.View(m.keys)
}

// Previewer shows rendered license text and asks whether to save it.
type Previewer struct {
	theme    *Theme
	headless *HeadlessManager
	in       io.Reader
	out      io.Writer
}

// NewPreviewer creates a Previewer reading keys from in and drawing to out.
func NewPreviewer(theme *Theme, hm *HeadlessManager, in io.Reader, out io.Writer) *Previewer {
	return &Previewer{theme: theme, headless: hm, in: in, out: out}
}

// Show displays content under title. In headless mode the text is written
// to the output as-is and PreviewSave is returned, so non-interactive runs
// always proceed to saving.
func (p *Previewer) Show(title, content string) (PreviewAction, error) {
	if p.headless.IsHeadless() {
		if _, err := io.WriteString(p.out, content); err != nil {
			return PreviewDiscard, fmt.Errorf("write preview: %w", err)
		}
		if !strings.HasSuffix(content, "\n") {
			_, _ = io.WriteString(p.out, "\n")
		}
		return PreviewSave, nil
	}

	prog := tea.NewProgram(
		newPreviewModel(p.theme, title, content),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		return PreviewDiscard, fmt.Errorf("run preview: %w", err)
	}
	m, ok := final.(previewModel)
	if !ok {
		return PreviewDiscard, fmt.Errorf("run preview: unexpected model %T", final)
	}
	return m.action, nil
}
