package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/licensegen/licensegen/internal/license"
)

// recommendationWrap is the word-wrap width used for recommendation markdown.
const recommendationWrap = 72

// RecommendationMarkdown formats the selection reason the way it is shown
// to the user before the license text.
func RecommendationMarkdown(g *license.GeneratedLicense) string {
	return fmt.Sprintf("Recommendation: *%s*\n\nReason: %s\n", g.DisplayName, g.Recommendation.Reason)
}

// RenderRecommendation renders the recommendation as a card whose border
// colour follows the recommendation level. With NoColor the markdown is
// returned unstyled.
func RenderRecommendation(theme *Theme, g *license.GeneratedLicense) (string, error) {
	md := RecommendationMarkdown(g)
	if theme.NoColor {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.Mode),
		glamour.WithWordWrap(recommendationWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	body, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render recommendation: %w", err)
	}

	border := levelColor(theme, g.Recommendation.Level)
	return theme.cardStyle(border).Render(strings.TrimSpace(body)), nil
}

func levelColor(theme *Theme, level license.Level) string {
	switch level {
	case license.LevelWarning:
		return theme.Colors.Warning
	case license.LevelInfo:
		return theme.Colors.Info
	default:
		return theme.Colors.Success
	}
}

// SuccessCard renders a success message inside a rounded border card.
func SuccessCard(theme *Theme, title string, details ...string) string {
	var body strings.Builder
	body.WriteString(theme.style(theme.Colors.Success).Render("✓"))
	body.WriteString(" ")
	body.WriteString(title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return theme.cardStyle(theme.Colors.Border).Render(body.String())
}

// ErrorLine renders a single blocking error message.
func ErrorLine(theme *Theme, msg string) string {
	return theme.style(theme.Colors.Error).Bold(!theme.NoColor).Render("⚠ Error: " + msg)
}
