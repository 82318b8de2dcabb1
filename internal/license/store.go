package license

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.txt.tmpl
var templateFS embed.FS

// unexpandedTokenPattern detects placeholder syntax left behind after rendering.
// Matches {{.VAR}}, {VAR} and ${VAR}.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}|\$?\{[A-Z_][A-Z0-9_]*\}`)

// Template is an immutable license body with YEAR and NAME placeholders.
type Template struct {
	ID          ID
	DisplayName string
	ShortName   string
	Body        string

	tmpl *template.Template
}

// placeholders is the data handed to every license body.
type placeholders struct {
	Year int
	Name string
}

// templateSpec binds an identifier to its embedded body.
type templateSpec struct {
	id          ID
	displayName string
	shortName   string
	file        string
}

var builtinTemplates = []templateSpec{
	{id: MIT, displayName: "MIT License", shortName: "MIT", file: "templates/mit.txt.tmpl"},
	{id: Apache20, displayName: "Apache 2.0", shortName: "Apache", file: "templates/apache-2.0.txt.tmpl"},
	{id: GPL30, displayName: "GNU GPL v3", shortName: "GPLv3", file: "templates/gpl-3.0.txt.tmpl"},
}

// Store holds the built-in templates. It is read-only after construction
// and safe for concurrent use.
type Store struct {
	byID  map[ID]Template
	order []ID
}

// NewStore loads and checks every built-in template from the embedded FS.
func NewStore() (*Store, error) {
	return newStoreFS(templateFS, builtinTemplates)
}

func newStoreFS(fsys fs.FS, specs []templateSpec) (*Store, error) {
	s := &Store{byID: make(map[ID]Template, len(specs))}
	for _, spec := range specs {
		t, err := loadTemplate(fsys, spec)
		if err != nil {
			return nil, err
		}
		s.byID[spec.id] = t
		s.order = append(s.order, spec.id)
	}
	return s, nil
}

// loadTemplate parses a body with missingkey=error and probes it once to make
// sure both placeholders resolve and nothing else is left unexpanded.
func loadTemplate(fsys fs.FS, spec templateSpec) (Template, error) {
	content, err := fs.ReadFile(fsys, spec.file)
	if err != nil {
		return Template{}, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, spec.file, err)
	}

	tmpl, err := template.New(string(spec.id)).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return Template{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidTemplate, spec.file, err)
	}

	t := Template{
		ID:          spec.id,
		DisplayName: spec.displayName,
		ShortName:   spec.shortName,
		Body:        string(content),
		tmpl:        tmpl,
	}

	const probeYear, probeName = 1970, "probe-holder"
	out, err := t.execute(probeYear, probeName)
	if err != nil {
		return Template{}, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, spec.file, err)
	}
	if !strings.Contains(out, strconv.Itoa(probeYear)) || !strings.Contains(out, probeName) {
		return Template{}, fmt.Errorf("%w: %s must reference both {{.Year}} and {{.Name}}", ErrInvalidTemplate, spec.file)
	}
	if loc := unexpandedTokenPattern.FindString(out); loc != "" {
		return Template{}, fmt.Errorf("%w: %s: unexpanded token %q", ErrInvalidTemplate, spec.file, loc)
	}

	return t, nil
}

func (t Template) execute(year int, name string) (string, error) {
	if t.tmpl == nil {
		return "", fmt.Errorf("%w: %s not loaded", ErrInvalidTemplate, t.ID)
	}
	var b strings.Builder
	if err := t.tmpl.Execute(&b, placeholders{Year: year, Name: name}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Lookup returns the template for id. The second value is false only for
// identifiers outside the built-in set.
func (s *Store) Lookup(id ID) (Template, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Templates returns all templates in presentation order.
func (s *Store) Templates() []Template {
	out := make([]Template, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

var (
	defaultStoreOnce sync.Once
	defaultStore     *Store
	defaultStoreErr  error
)

// MustDefaultStore returns the process-wide store, building it on first use.
// The embedded templates are part of the binary, so a failure here is a
// build defect and panics.
func MustDefaultStore() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore, defaultStoreErr = NewStore()
	})
	if defaultStoreErr != nil {
		panic(defaultStoreErr)
	}
	return defaultStore
}
