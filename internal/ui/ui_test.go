package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/licensegen/licensegen/internal/license"
)

func testTheme() *Theme {
	return NewTheme(ThemeConfig{NoColor: true})
}

func forcedHeadless(headless bool) *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(headless)
	return hm
}

func testLicense(t *testing.T) *license.GeneratedLicense {
	t.Helper()
	g := license.NewGenerator(license.MustDefaultStore(), nil)
	out, err := g.Generate(license.UserInputs{AuthorName: "Linus T.", Year: 1991, WantsPatentClause: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return out
}

func TestNewTheme(t *testing.T) {
	dark := NewTheme(ThemeConfig{Mode: "unknown"})
	if dark.Mode != "dark" || dark.Colors.Primary != ColorPrimary {
		t.Errorf("NewTheme(unknown) = %+v, want dark palette", dark)
	}

	light := NewTheme(ThemeConfig{Mode: "light"})
	if light.Colors.Primary == ColorPrimary {
		t.Error("light theme should not reuse the dark primary colour")
	}
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}

	hm.ClearForce()
	hm.input = nil
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false with no input attached")
	}
}

func TestRecommendationNoColor(t *testing.T) {
	g := testLicense(t)

	got, err := RenderRecommendation(testTheme(), g)
	if err != nil {
		t.Fatalf("RenderRecommendation() error = %v", err)
	}
	if !strings.Contains(got, "Recommendation: *Apache 2.0*") {
		t.Errorf("missing recommendation header in %q", got)
	}
	if !strings.Contains(got, "patent protection") {
		t.Errorf("missing reason in %q", got)
	}
}

func TestRecommendationStyled(t *testing.T) {
	g := testLicense(t)

	got, err := RenderRecommendation(NewTheme(ThemeConfig{Mode: "dark"}), g)
	if err != nil {
		t.Fatalf("RenderRecommendation() error = %v", err)
	}
	if !strings.Contains(got, "Apache") || !strings.Contains(got, "Recommendation") {
		t.Errorf("styled recommendation lost its content: %q", got)
	}
}

func TestSuccessCard(t *testing.T) {
	got := SuccessCard(testTheme(), "Saved LICENSE.txt", "Apache 2.0")
	if !strings.Contains(got, "Saved LICENSE.txt") || !strings.Contains(got, "Apache 2.0") {
		t.Errorf("SuccessCard() = %q", got)
	}
}

func TestErrorLine(t *testing.T) {
	got := ErrorLine(testTheme(), "Please enter a Developer Name in Step 1.")
	if !strings.Contains(got, "Error: Please enter a Developer Name in Step 1.") {
		t.Errorf("ErrorLine() = %q", got)
	}
}

func TestPreviewHeadlessWritesText(t *testing.T) {
	var out bytes.Buffer
	p := NewPreviewer(testTheme(), forcedHeadless(true), strings.NewReader(""), &out)

	action, err := p.Show("Apache 2.0", "line one")
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if action != PreviewSave {
		t.Errorf("Show() action = %v, want PreviewSave", action)
	}
	if out.String() != "line one\n" {
		t.Errorf("Show() wrote %q", out.String())
	}
}

func TestPreviewModelKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want PreviewAction
	}{
		{"save", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, PreviewSave},
		{"enter saves", tea.KeyMsg{Type: tea.KeyEnter}, PreviewSave},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, PreviewDiscard},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, PreviewDiscard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPreviewModel(testTheme(), "MIT License", "body")
			updated, cmd := m.Update(tt.msg)
			pm := updated.(previewModel)
			if !pm.done {
				t.Error("model should be done")
			}
			if pm.action != tt.want {
				t.Errorf("action = %v, want %v", pm.action, tt.want)
			}
			if cmd == nil {
				t.Error("expected tea.Quit command")
			}
			if pm.View() != "" {
				t.Error("View() should be empty once done")
			}
		})
	}
}

func TestPreviewModelResizeAndView(t *testing.T) {
	m := newPreviewModel(testTheme(), "GNU GPL v3", strings.Repeat("line\n", 100))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	pm := updated.(previewModel)
	if pm.viewport.Width != 60 || pm.viewport.Height != 24-previewChromeHeight {
		t.Errorf("viewport = %dx%d", pm.viewport.Width, pm.viewport.Height)
	}

	updated, _ = pm.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	if h := updated.(previewModel).viewport.Height; h != 1 {
		t.Errorf("viewport height = %d, want clamp to 1", h)
	}

	view := pm.View()
	if !strings.Contains(view, "GNU GPL v3") {
		t.Errorf("View() missing title: %q", view)
	}
	if !strings.Contains(view, "save LICENSE.txt") {
		t.Errorf("View() missing help: %q", view)
	}
}
