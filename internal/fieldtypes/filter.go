// Package fieldtypes classifies host fields and fieldtypes for the search
// index: which fields may feed the index, which may hold it, and which
// fieldtypes may ever be marked compatible.
package fieldtypes

import "github.com/conn-castle/sitesearch/internal/host"

// ModulePrefix is the name prefix shared by all fieldtype modules.
const ModulePrefix = "Fieldtype"

// blacklisted holds fieldtypes that never carry indexable content.
var blacklisted = []string{
	"FieldtypePassword",
	"FieldtypeFieldsetOpen",
	"FieldtypeFieldsetClose",
	"FieldtypeFieldsetPage",
}

var blacklist = toSet(blacklisted)

// Blacklist returns the fieldtypes that are never offered as compatible.
func Blacklist() []string {
	return append([]string(nil), blacklisted...)
}

// IsBlacklisted reports whether fieldtype can never be marked compatible.
func IsBlacklisted(fieldtype string) bool {
	_, ok := blacklist[fieldtype]
	return ok
}

// IsIndexFieldType reports whether fieldtype can store the search index.
func IsIndexFieldType(fieldtype string) bool {
	return host.IsTextareaType(fieldtype)
}

// CandidateIndexedFields returns the names of fields whose type is in
// compatible, excluding indexField itself. Order follows fields.
func CandidateIndexedFields(fields []host.Field, compatible []string, indexField string) []string {
	if len(compatible) == 0 {
		return nil
	}
	allowed := make(map[string]struct{}, len(compatible))
	for _, fieldtype := range compatible {
		allowed[fieldtype] = struct{}{}
	}
	var out []string
	for _, field := range fields {
		if field.Name == indexField {
			continue
		}
		if _, ok := allowed[field.Type]; !ok {
			continue
		}
		out = append(out, field.Name)
	}
	return out
}

// CandidateIndexFields returns the names of fields that can hold the index.
func CandidateIndexFields(fields []host.Field) []string {
	var out []string
	for _, field := range fields {
		if IsIndexFieldType(field.Type) {
			out = append(out, field.Name)
		}
	}
	return out
}

// SelectableFieldtypes returns every fieldtype module known to the host
// except the blacklist, in registration order.
func SelectableFieldtypes(modules host.Modules) []string {
	if modules == nil {
		return nil
	}
	var out []string
	for _, mod := range modules.Find(ModulePrefix) {
		if IsBlacklisted(mod.Name) {
			continue
		}
		out = append(out, mod.Name)
	}
	return out
}
