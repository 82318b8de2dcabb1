package license

import (
	"fmt"
	"log/slog"
)

// Generator turns UserInputs into a GeneratedLicense. It holds no mutable
// state, so one Generator may serve any number of requests.
type Generator struct {
	store  *Store
	logger *slog.Logger
}

// NewGenerator creates a Generator over store. A nil logger falls back to
// slog.Default().
func NewGenerator(store *Store, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{store: store, logger: logger}
}

// Generate validates the author name, selects a license and renders it.
// An empty name fails with *MissingFieldError before anything is selected.
func (g *Generator) Generate(in UserInputs) (*GeneratedLicense, error) {
	if in.AuthorName == "" {
		return nil, &MissingFieldError{Field: FieldAuthorName}
	}

	id, rec := Recommend(in.WantsCopyleft, in.WantsPatentClause)
	tmpl, ok := g.store.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLicense, id)
	}

	text, err := Render(tmpl, in.Year, in.AuthorName)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("license generated",
		"license", id,
		"year", in.Year,
		"copyleft", in.WantsCopyleft,
		"patent_clause", in.WantsPatentClause,
	)

	return &GeneratedLicense{
		ID:             id,
		DisplayName:    tmpl.DisplayName,
		Text:           text,
		Recommendation: rec,
	}, nil
}
