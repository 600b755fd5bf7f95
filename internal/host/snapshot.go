package host

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/sitesearch/internal/messages"
)

// ErrFieldExists is returned when an index field cannot be created because
// the name is already taken.
var ErrFieldExists = errors.New("field already exists")

// ErrInvalidFieldName is returned when an index field name sanitises to nothing.
var ErrInvalidFieldName = errors.New("invalid field name")

// Snapshot is an in-memory host loaded from a TOML description of the
// host's registries. It implements every registry interface and the search
// engine factory, so the CLI and tests can run the engine without a live host.
type Snapshot struct {
	AdminURL     string            `toml:"admin_url"`
	Fields       []Field           `toml:"fields"`
	Templates    []Template        `toml:"templates"`
	Modules      []Module          `toml:"modules"`
	Translations map[string]string `toml:"translations,omitempty"`

	mu       sync.Mutex
	redirect string
}

// LoadSnapshot reads and validates a host snapshot from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingHostFileFmt, path, err)
	}
	return ParseSnapshot(data, path)
}

// ParseSnapshot decodes snapshot TOML, rejecting unknown keys.
// source is used in error messages.
func ParseSnapshot(data []byte, source string) (*Snapshot, error) {
	var snap Snapshot
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidHostFmt, source, err)
	}
	if err := snap.validate(source); err != nil {
		return nil, err
	}
	if snap.AdminURL != "" && !strings.HasSuffix(snap.AdminURL, "/") {
		snap.AdminURL += "/"
	}
	return &snap, nil
}

func (s *Snapshot) validate(source string) error {
	templates := make(map[string]struct{}, len(s.Templates))
	for i, tpl := range s.Templates {
		if strings.TrimSpace(tpl.Name) == "" {
			return fmt.Errorf(messages.ConfigHostTemplateNameFmt, source, i)
		}
		templates[tpl.Name] = struct{}{}
	}
	seen := make(map[string]int, len(s.Fields))
	for i, field := range s.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return fmt.Errorf(messages.ConfigHostFieldNameFmt, source, i)
		}
		if strings.TrimSpace(field.Type) == "" {
			return fmt.Errorf(messages.ConfigHostFieldTypeFmt, source, i)
		}
		if first, ok := seen[field.Name]; ok {
			return fmt.Errorf(messages.ConfigHostDuplicateFieldFmt, source, i, field.Name, first)
		}
		seen[field.Name] = i
		for _, name := range field.Templates {
			if _, ok := templates[name]; !ok {
				return fmt.Errorf(messages.ConfigHostFieldTemplateFmt, source, i, name)
			}
		}
	}
	return nil
}

// Host bundles the snapshot's services with the given request input.
func (s *Snapshot) Host(input Input) Host {
	return Host{
		Fields:       snapshotFields{s},
		Templates:    snapshotTemplates{s},
		Modules:      snapshotModules{s},
		Sanitizer:    NameSanitizer{},
		Input:        input,
		Translator:   Catalog(s.Translations),
		SearchEngine: snapshotEngine{s},
		AdminURL:     s.AdminURL,
	}
}

// Redirect returns the return URL passed to the last successful index field creation.
func (s *Snapshot) Redirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirect
}

func (s *Snapshot) fields() []Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Field, len(s.Fields))
	for i, f := range s.Fields {
		f.Templates = append([]string(nil), f.Templates...)
		out[i] = f
	}
	return out
}

func (s *Snapshot) field(name string) (Field, bool) {
	for _, f := range s.fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

type snapshotFields struct{ s *Snapshot }

func (f snapshotFields) All() []Field { return f.s.fields() }

func (f snapshotFields) ByName(name string) (Field, bool) { return f.s.field(name) }

type snapshotTemplates struct{ s *Snapshot }

func (t snapshotTemplates) All() []Template {
	return append([]Template(nil), t.s.Templates...)
}

type snapshotModules struct{ s *Snapshot }

func (m snapshotModules) module(name string) (Module, bool) {
	for _, mod := range m.s.Modules {
		if mod.Name == name {
			return mod, true
		}
	}
	return Module{}, false
}

func (m snapshotModules) Find(prefix string) []Module {
	var out []Module
	for _, mod := range m.s.Modules {
		if strings.HasPrefix(mod.Name, prefix) {
			out = append(out, mod)
		}
	}
	return out
}

func (m snapshotModules) IsInstalled(name string) bool {
	mod, ok := m.module(name)
	return ok && mod.Installed
}

type snapshotEngine struct{ s *Snapshot }

// CreateIndexField registers a new plain textarea field. It refuses names
// that are already taken rather than converting the existing field.
func (e snapshotEngine) CreateIndexField(name string, returnURL string) (Field, error) {
	name = FieldName(name)
	if name == "" {
		return Field{}, ErrInvalidFieldName
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	for _, f := range e.s.Fields {
		if f.Name == name {
			return Field{}, fmt.Errorf(messages.ConfigHostFieldExistsFmt, ErrFieldExists, name)
		}
	}
	field := Field{Name: name, Type: FieldtypeTextarea, Label: messages.ConfigHostIndexFieldLabel}
	e.s.Fields = append(e.s.Fields, field)
	e.s.redirect = returnURL
	return field, nil
}

func (e snapshotEngine) IndexField(name string) (IndexField, bool) {
	field, ok := e.s.field(name)
	if !ok {
		return IndexField{}, false
	}
	return IndexField{Field: field, Valid: IsTextareaType(field.Type)}, true
}
