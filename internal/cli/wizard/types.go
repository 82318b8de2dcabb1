// Package wizard provides the interactive huh-based questionnaire that
// collects the author, year and the two license preferences.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/licensegen/licensegen/internal/license"
)

// Question IDs.
const (
	QuestionAuthorName = "author_name"
	QuestionYear       = "year"
	QuestionShareAlike = "share_alike"
	QuestionPatent     = "patent"
)

// MsgMissingAuthor is shown when the author name is left empty.
const MsgMissingAuthor = "Please enter a Developer Name in Step 1."

// Answers holds the user's raw answers from the wizard.
type Answers struct {
	AuthorName string // Copyright holder, taken verbatim (required)
	Year       string // Copyright year as typed
	ShareAlike string // One of license.ShareAlikeChoices labels
	Patent     string // One of license.PatentChoices labels
}

// Inputs converts the answers into a generation request. The author name
// is not validated here; the generator reports a missing name.
func (a *Answers) Inputs() (license.UserInputs, error) {
	year, err := ParseYear(a.Year)
	if err != nil {
		return license.UserInputs{}, err
	}
	copyleft, err := license.ParseShareAlike(a.ShareAlike)
	if err != nil {
		return license.UserInputs{}, fmt.Errorf("share-alike answer: %w", err)
	}
	patent, err := license.ParsePatent(a.Patent)
	if err != nil {
		return license.UserInputs{}, fmt.Errorf("patent answer: %w", err)
	}
	return license.UserInputs{
		AuthorName:        a.AuthorName,
		Year:              year,
		WantsCopyleft:     copyleft,
		WantsPatentClause: patent,
	}, nil
}

// ParseYear parses a typed copyright year. Any integer is accepted.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	return year, nil
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra validation for input questions
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidYear is returned when the year answer is not an integer.
	ErrInvalidYear = errors.New("copyright year must be a whole number")
)
