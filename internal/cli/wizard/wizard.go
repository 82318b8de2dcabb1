package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Run executes the wizard and returns the answers.
// Each question runs as its own huh.Form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question, styles *Styles) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{}
	theme := styles.Theme()

	for i := range questions {
		q := &questions[i]

		form := huh.NewForm(buildQuestionGroup(q, answers)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return answers, nil
}

// RunWithDefaults runs the default questionnaire pre-filled with d.
func RunWithDefaults(d Defaults, styles *Styles) (*Answers, error) {
	return Run(DefaultQuestions(d), styles)
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, answers *Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, answers)
	case QuestionTypeInput:
		field = buildInputField(q, answers)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are static and no Height is set, which keeps the viewport sized to
// the option list.
func buildSelectField(q *Question, answers *Answers) *huh.Select[string] {
	selected := q.Default
	saveAnswer(q.ID, selected, answers)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	qID := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(qID, val, answers)
			return nil
		})
}

// buildInputField creates a huh.Input field for an input-type question.
// The typed value is stored verbatim; an empty value falls back to the
// question default.
func buildInputField(q *Question, answers *Answers) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qID := q.ID
	required := q.Required
	defVal := q.Default
	validate := q.Validate
	return inp.Validate(func(val string) error {
		v := val
		if v == "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New(requiredMessage(qID))
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, answers)
		return nil
	})
}

func requiredMessage(id string) string {
	if id == QuestionAuthorName {
		return MsgMissingAuthor
	}
	return "This field is required"
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, answers *Answers) {
	switch id {
	case QuestionAuthorName:
		answers.AuthorName = value
	case QuestionYear:
		answers.Year = value
	case QuestionShareAlike:
		answers.ShareAlike = value
	case QuestionPatent:
		answers.Patent = value
	}
}
