package license

import "fmt"

// Render fills the YEAR and NAME placeholders of t. The year is written in
// decimal and the name is inserted verbatim, without trimming or escaping.
// An empty name yields a *MissingFieldError.
func Render(t Template, year int, name string) (string, error) {
	if name == "" {
		return "", &MissingFieldError{Field: FieldAuthorName}
	}
	out, err := t.execute(year, name)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", t.ID, err)
	}
	return out, nil
}
