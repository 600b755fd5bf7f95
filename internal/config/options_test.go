package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupOption(t *testing.T) {
	def, ok := LookupOption(KeyIndexPagesNow)
	require.True(t, ok)
	require.Equal(t, OptionBool, def.Type)
	require.True(t, def.Transient)
	require.NotEmpty(t, def.LockedNote)

	_, ok = LookupOption(KeyIndexedTemplates)
	require.False(t, ok)
}

func TestOptionKeysFollowCatalogOrder(t *testing.T) {
	keys := OptionKeys()
	require.Equal(t, KeyIndexedFields, keys[0])
	require.Len(t, keys, 6)
}

func TestEveryOptionHasLockedNote(t *testing.T) {
	for _, key := range OptionKeys() {
		def, ok := LookupOption(key)
		require.True(t, ok, key)
		require.NotEmpty(t, def.LockedNote, key)
	}
}

func TestSettingsIsSet(t *testing.T) {
	var s Settings
	for _, key := range OptionKeys() {
		require.False(t, s.IsSet(key), key)
	}
	require.False(t, s.IsSet("unknown"))

	s = Settings{OverrideCompatibleFieldtypes: true, IndexedTemplates: []string{"basic-page"}}
	require.True(t, s.IsSet(KeyOverrideCompatibleFieldtypes))
	require.True(t, s.IsSet(KeyIndexedTemplates))
}

func TestSettingsClone(t *testing.T) {
	s := Settings{IndexedFields: []string{"title"}, CompatibleFieldtypes: []string{"FieldtypeText"}}
	c := s.Clone()
	c.IndexedFields[0] = "body"
	c.CompatibleFieldtypes[0] = "FieldtypeEmail"

	require.Equal(t, "title", s.IndexedFields[0])
	require.Equal(t, "FieldtypeText", s.CompatibleFieldtypes[0])
	require.Nil(t, c.IndexedTemplates)
}

func TestDefaultsReturnsFreshLists(t *testing.T) {
	d := Defaults()
	d.CompatibleFieldtypes[0] = "changed"

	require.Equal(t, "FieldtypeEmail", Defaults().CompatibleFieldtypes[0])
	require.Len(t, Defaults().CompatibleFieldtypes, 16)
}
