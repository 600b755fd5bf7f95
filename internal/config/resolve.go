package config

// Source records which layer supplied an option value.
type Source int

const (
	// SourceDefault means the module default was used.
	SourceDefault Source = iota
	// SourceSaved means the admin-saved value was used.
	SourceSaved
	// SourceSite means a site override supplied the value; the key is locked.
	SourceSite
)

func (s Source) String() string {
	switch s {
	case SourceSaved:
		return "saved"
	case SourceSite:
		return "site"
	default:
		return "default"
	}
}

// Value is a resolved option value with its provenance.
type Value[T any] struct {
	Value  T
	Source Source
}

// Locked reports whether a site override supplied the value.
func (v Value[T]) Locked() bool {
	return v.Source == SourceSite
}

// Options is the effective option view after merging all layers.
type Options struct {
	IndexField                   Value[string]
	IndexedFields                Value[[]string]
	CompatibleFieldtypes         Value[[]string]
	OverrideCompatibleFieldtypes Value[bool]
	IndexPagesNow                Value[bool]
	IndexPagesNowSelector        Value[string]
}

// Resolver merges option layers. Site overrides win over saved settings,
// which win over defaults.
type Resolver struct {
	Defaults Settings
	Site     Settings
}

// NewResolver returns a resolver over the module defaults and site overrides.
func NewResolver(site Settings) Resolver {
	return Resolver{Defaults: Defaults(), Site: site}
}

// Resolve returns the effective options for the saved admin payload.
func (r Resolver) Resolve(saved Settings) Options {
	return Resolve(r.Defaults, r.Site, saved)
}

// Resolve merges defaults, site overrides, and saved settings.
// The saved compatible fieldtypes only apply while the effective override
// flag is set; the flag never gates a site override.
func Resolve(defaults Settings, site Settings, saved Settings) Options {
	var opts Options
	opts.IndexField = pick(KeyIndexField, defaults.IndexField, site, saved, func(s Settings) string { return s.IndexField })
	opts.IndexedFields = pick(KeyIndexedFields, cloneList(defaults.IndexedFields), site, saved, func(s Settings) []string { return cloneList(s.IndexedFields) })
	opts.OverrideCompatibleFieldtypes = pick(KeyOverrideCompatibleFieldtypes, defaults.OverrideCompatibleFieldtypes, site, saved, func(s Settings) bool { return s.OverrideCompatibleFieldtypes })
	if !opts.OverrideCompatibleFieldtypes.Value {
		saved.CompatibleFieldtypes = nil
	}
	opts.CompatibleFieldtypes = pick(KeyCompatibleFieldtypes, cloneList(defaults.CompatibleFieldtypes), site, saved, func(s Settings) []string { return cloneList(s.CompatibleFieldtypes) })
	opts.IndexPagesNow = pick(KeyIndexPagesNow, defaults.IndexPagesNow, site, saved, func(s Settings) bool { return s.IndexPagesNow })
	opts.IndexPagesNowSelector = pick(KeyIndexPagesNowSelector, defaults.IndexPagesNowSelector, site, saved, func(s Settings) string { return s.IndexPagesNowSelector })
	return opts
}

func pick[T any](key string, def T, site Settings, saved Settings, get func(Settings) T) Value[T] {
	if site.IsSet(key) {
		return Value[T]{Value: get(site), Source: SourceSite}
	}
	if saved.IsSet(key) {
		return Value[T]{Value: get(saved), Source: SourceSaved}
	}
	return Value[T]{Value: def, Source: SourceDefault}
}

// Entry is one resolved option in display form.
type Entry struct {
	Key    string
	Value  any
	Source Source
}

// Entries returns the resolved options in catalog order.
func (o Options) Entries() []Entry {
	entries := make([]Entry, 0, len(options))
	for _, def := range options {
		value, source := o.lookup(def.Key)
		entries = append(entries, Entry{Key: def.Key, Value: value, Source: source})
	}
	return entries
}

// Locked reports whether key was supplied by a site override.
func (o Options) Locked(key string) bool {
	_, source := o.lookup(key)
	return source == SourceSite
}

// LockedKeys returns the keys supplied by site overrides, in catalog order.
func (o Options) LockedKeys() []string {
	var keys []string
	for _, def := range options {
		if o.Locked(def.Key) {
			keys = append(keys, def.Key)
		}
	}
	return keys
}

// Settings returns the effective values as a settings layer.
func (o Options) Settings() Settings {
	return Settings{
		IndexField:                   o.IndexField.Value,
		IndexedFields:                cloneList(o.IndexedFields.Value),
		CompatibleFieldtypes:         cloneList(o.CompatibleFieldtypes.Value),
		OverrideCompatibleFieldtypes: o.OverrideCompatibleFieldtypes.Value,
		IndexPagesNow:                o.IndexPagesNow.Value,
		IndexPagesNowSelector:        o.IndexPagesNowSelector.Value,
	}
}

func (o Options) lookup(key string) (any, Source) {
	switch key {
	case KeyIndexField:
		return o.IndexField.Value, o.IndexField.Source
	case KeyIndexedFields:
		return o.IndexedFields.Value, o.IndexedFields.Source
	case KeyCompatibleFieldtypes:
		return o.CompatibleFieldtypes.Value, o.CompatibleFieldtypes.Source
	case KeyOverrideCompatibleFieldtypes:
		return o.OverrideCompatibleFieldtypes.Value, o.OverrideCompatibleFieldtypes.Source
	case KeyIndexPagesNow:
		return o.IndexPagesNow.Value, o.IndexPagesNow.Source
	case KeyIndexPagesNowSelector:
		return o.IndexPagesNowSelector.Value, o.IndexPagesNowSelector.Source
	default:
		return nil, SourceDefault
	}
}
