package host

import (
	"net/url"
	"strings"
)

// Query is an Input backed by parsed URL query values.
type Query url.Values

// ParseQuery parses raw as a URL query string; a leading "?" is ignored.
func ParseQuery(raw string) (Query, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		return nil, err
	}
	return Query(values), nil
}

// Get returns the first value for key.
func (q Query) Get(key string) string {
	return url.Values(q).Get(key)
}

// Catalog is a Translator backed by a source-to-translation map.
type Catalog map[string]string

// Translate returns the catalog entry for text, or text itself when missing.
func (c Catalog) Translate(text string) string {
	if translated, ok := c[text]; ok && translated != "" {
		return translated
	}
	return text
}
