// Package license selects one of the built-in open-source licenses from a
// pair of user preferences and renders its text with the copyright holder
// and year filled in.
package license

import (
	"fmt"
	"slices"
	"strings"
)

// ID identifies a built-in license by its SPDX identifier.
type ID string

// Built-in license identifiers.
const (
	MIT      ID = "MIT"
	Apache20 ID = "Apache-2.0"
	GPL30    ID = "GPL-3.0"
)

// String returns the SPDX identifier.
func (id ID) String() string {
	return string(id)
}

// IsValid reports whether id names a built-in template.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// IDs returns the built-in identifiers in presentation order.
func IDs() []ID {
	return []ID{MIT, Apache20, GPL30}
}

// ParseID resolves s to a built-in identifier, ignoring case and
// surrounding whitespace.
func ParseID(s string) (ID, error) {
	v := strings.TrimSpace(s)
	for _, id := range IDs() {
		if strings.EqualFold(v, string(id)) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLicense, s)
}

// UserInputs holds one generation request from the presentation layer.
type UserInputs struct {
	AuthorName        string
	Year              int
	WantsCopyleft     bool
	WantsPatentClause bool
}

// GeneratedLicense is the result of applying UserInputs to a Template.
// Text never contains an unresolved placeholder.
type GeneratedLicense struct {
	ID             ID
	DisplayName    string
	Text           string
	Recommendation Recommendation
}

// Artifact describes the file offered for download.
type Artifact struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Download artifact defaults.
const (
	ArtifactFileName = "LICENSE.txt"
	ArtifactMIMEType = "text/plain"
)

// Artifact returns the suggested download for the generated text.
func (g *GeneratedLicense) Artifact() Artifact {
	return Artifact{
		FileName: ArtifactFileName,
		MIMEType: ArtifactMIMEType,
		Content:  []byte(g.Text),
	}
}
