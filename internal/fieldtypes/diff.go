package fieldtypes

import (
	"fmt"
	"strings"

	"github.com/conn-castle/sitesearch/internal/messages"
)

// Diff is the delta between the default and the current compatible fieldtypes.
type Diff struct {
	Added   []string
	Removed []string
}

// DiffAgainst compares current with defaults. Added keeps the order of
// current; Removed keeps the order of defaults and drops fieldtypes that
// installed reports as not installed, since removing them changes nothing.
func DiffAgainst(defaults []string, current []string, installed func(string) bool) Diff {
	var d Diff
	inDefaults := toSet(defaults)
	inCurrent := toSet(current)
	seen := make(map[string]struct{}, len(current))
	for _, fieldtype := range current {
		if _, ok := inDefaults[fieldtype]; ok {
			continue
		}
		if _, dup := seen[fieldtype]; dup {
			continue
		}
		seen[fieldtype] = struct{}{}
		d.Added = append(d.Added, fieldtype)
	}
	for _, fieldtype := range defaults {
		if _, ok := inCurrent[fieldtype]; ok {
			continue
		}
		if installed != nil && !installed(fieldtype) {
			continue
		}
		d.Removed = append(d.Removed, fieldtype)
	}
	return d
}

// Empty reports whether nothing was added or removed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// String renders the diff without translation.
func (d Diff) String() string {
	return d.Render(nil)
}

// Render returns "" for an empty diff, otherwise "+ added: …" and
// "- removed: …" lines. translate may be nil.
func (d Diff) Render(translate func(string) string) string {
	if translate == nil {
		translate = func(s string) string { return s }
	}
	var lines []string
	if len(d.Added) > 0 {
		lines = append(lines, "+ "+fmt.Sprintf(translate(messages.FormDiffAddedFmt), strings.Join(d.Added, ", ")))
	}
	if len(d.Removed) > 0 {
		lines = append(lines, "- "+fmt.Sprintf(translate(messages.FormDiffRemovedFmt), strings.Join(d.Removed, ", ")))
	}
	return strings.Join(lines, "\n")
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
