package wizard

import (
	"strconv"

	"github.com/licensegen/licensegen/internal/license"
)

// Defaults pre-fills wizard answers, usually from config or flags.
type Defaults struct {
	AuthorName string
	Year       int
}

// DefaultQuestions returns the questionnaire in order:
// 1. Developer name (required)
// 2. Copyright year
// 3. Share-alike requirement
// 4. Patent protection requirement
func DefaultQuestions(d Defaults) []Question {
	return []Question{
		{
			ID:          QuestionAuthorName,
			Type:        QuestionTypeInput,
			Title:       "Enter Developer Name",
			Description: "Step 1: the copyright holder printed in the license, e.g. Leon Smith.",
			Default:     d.AuthorName,
			Required:    true,
		},
		{
			ID:          QuestionYear,
			Type:        QuestionTypeInput,
			Title:       "Copyright Year",
			Description: "Step 1: defaults to the current year.",
			Default:     strconv.Itoa(d.Year),
			Required:    true,
			Validate: func(v string) error {
				_, err := ParseYear(v)
				return err
			},
		},
		{
			ID:          QuestionShareAlike,
			Type:        QuestionTypeSelect,
			Title:       "1. " + license.ShareAlikeQuestion,
			Description: "Step 2: copyleft licenses require derivative works to use the same terms.",
			Options:     choiceOptions(license.ShareAlikeChoices()),
			Default:     license.ShareAlikeYes,
			Required:    true,
		},
		{
			ID:          QuestionPatent,
			Type:        QuestionTypeSelect,
			Title:       "2. " + license.PatentQuestion,
			Description: "Step 2: a patent clause grants explicit patent rights to users.",
			Options:     choiceOptions(license.PatentChoices()),
			Default:     license.PatentYes,
			Required:    true,
		},
	}
}

func choiceOptions(choices []license.Choice) []Option {
	opts := make([]Option, len(choices))
	for i, c := range choices {
		opts[i] = Option{Label: c.Label, Value: c.Label}
	}
	return opts
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
