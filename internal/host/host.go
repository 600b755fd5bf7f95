// Package host declares the services the settings engine consumes from the
// content management host. The engine reads registries through these narrow
// interfaces and mutates the host only through SearchEngine.CreateIndexField.
package host

import "strings"

// Field type identifiers the search engine accepts for the index field.
const (
	FieldtypeTextarea         = "FieldtypeTextarea"
	FieldtypeTextareaLanguage = "FieldtypeTextareaLanguage"
)

// Field describes a registered field.
type Field struct {
	Name      string   `toml:"name"`
	Type      string   `toml:"type"`
	Label     string   `toml:"label,omitempty"`
	Templates []string `toml:"templates,omitempty"`
}

// TemplateFlags is a bit set of template flags.
type TemplateFlags int

// FlagSystem marks a template owned by the host itself.
const FlagSystem TemplateFlags = 8

// Template describes a registered template.
type Template struct {
	Name  string        `toml:"name"`
	Flags TemplateFlags `toml:"flags,omitempty"`
}

// IsSystem reports whether the template carries the system flag.
func (t Template) IsSystem() bool {
	return t.Flags&FlagSystem != 0
}

// Module describes a module known to the host, installed or not.
type Module struct {
	Name      string `toml:"name"`
	Installed bool   `toml:"installed"`
}

// IndexField is a field as seen by the search engine, with its verdict on
// whether the field can store the index.
type IndexField struct {
	Field
	Valid bool
}

// Fields enumerates and looks up fields in registration order.
type Fields interface {
	All() []Field
	ByName(name string) (Field, bool)
}

// Templates enumerates templates in registration order.
type Templates interface {
	All() []Template
}

// Modules discovers module implementations.
type Modules interface {
	// Find returns modules whose name starts with prefix, in registration order.
	Find(prefix string) []Module
	IsInstalled(name string) bool
}

// Sanitizer normalises user-supplied identifiers.
type Sanitizer interface {
	FieldName(s string) string
}

// Input exposes the current request's query parameters.
type Input interface {
	Get(key string) string
}

// NoticeBus shows notices on the next rendered page.
type NoticeBus interface {
	Message(text string, allowMarkup bool)
	Warning(text string)
	Error(text string)
}

// Translator looks up localised text for a source string.
type Translator interface {
	Translate(text string) string
}

// SearchEngine is the search module's index field factory.
type SearchEngine interface {
	CreateIndexField(name string, returnURL string) (Field, error)
	IndexField(name string) (IndexField, bool)
}

// Host bundles the services consumed by the settings engine.
type Host struct {
	Fields       Fields
	Templates    Templates
	Modules      Modules
	Sanitizer    Sanitizer
	Input        Input
	Translator   Translator
	SearchEngine SearchEngine
	// AdminURL is the base URL for admin routes, with a trailing slash.
	AdminURL string
}

// T translates text, returning it unchanged when no translator is configured.
func (h Host) T(text string) string {
	if h.Translator == nil {
		return text
	}
	return h.Translator.Translate(text)
}

// Param returns a query parameter, or "" when no input is attached.
func (h Host) Param(key string) string {
	if h.Input == nil {
		return ""
	}
	return strings.TrimSpace(h.Input.Get(key))
}

// AllFields returns every registered field, or nil when the registry is absent.
func (h Host) AllFields() []Field {
	if h.Fields == nil {
		return nil
	}
	return h.Fields.All()
}

// AllTemplates returns every registered template, or nil when the registry is absent.
func (h Host) AllTemplates() []Template {
	if h.Templates == nil {
		return nil
	}
	return h.Templates.All()
}

// FieldTemplates returns the names of templates the named field is attached to.
// A missing field or registry yields no templates.
func (h Host) FieldTemplates(name string) []string {
	if h.Fields == nil || name == "" {
		return nil
	}
	field, ok := h.Fields.ByName(name)
	if !ok {
		return nil
	}
	return append([]string(nil), field.Templates...)
}

// IsTextareaType reports whether fieldtype can hold a search index.
func IsTextareaType(fieldtype string) bool {
	return fieldtype == FieldtypeTextarea || fieldtype == FieldtypeTextareaLanguage
}
