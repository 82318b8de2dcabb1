package license

import (
	"fmt"
	"strings"
)

// Choice is one of the two fixed answers to a preference question.
type Choice struct {
	Label string
	Value bool
}

// Fixed answer labels shown by the presentation layer.
const (
	ShareAlikeYes = "Yes (Strict / Viral)"
	ShareAlikeNo  = "No (Permissive)"
	PatentYes     = "Yes (Corporate / Safe)"
	PatentNo      = "No (Simple / Standard)"
)

// Question titles for the two preferences.
const (
	ShareAlikeQuestion = "Must others share their modifications back to the public?"
	PatentQuestion     = "Do you need explicit patent protection clauses?"
)

// ShareAlikeChoices returns the answers to the share-alike question, "yes" first.
func ShareAlikeChoices() []Choice {
	return []Choice{{Label: ShareAlikeYes, Value: true}, {Label: ShareAlikeNo, Value: false}}
}

// PatentChoices returns the answers to the patent question, "yes" first.
func PatentChoices() []Choice {
	return []Choice{{Label: PatentYes, Value: true}, {Label: PatentNo, Value: false}}
}

// ParseShareAlike maps a share-alike answer to wants_copyleft.
func ParseShareAlike(s string) (bool, error) {
	return parseChoice(s, ShareAlikeChoices())
}

// ParsePatent maps a patent-protection answer to wants_patent_clause.
func ParsePatent(s string) (bool, error) {
	return parseChoice(s, PatentChoices())
}

// parseChoice accepts a fixed label or a plain yes/no/true/false answer.
func parseChoice(s string, choices []Choice) (bool, error) {
	v := strings.TrimSpace(s)
	for _, c := range choices {
		if strings.EqualFold(v, c.Label) {
			return c.Value, nil
		}
	}
	switch strings.ToLower(v) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownChoice, s)
}

// ChoiceLabel returns the label of the choice matching value.
func ChoiceLabel(choices []Choice, value bool) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return ""
}
