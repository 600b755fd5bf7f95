package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{name: "empty", settings: Settings{}},
		{name: "defaults", settings: Defaults()},
		{
			name:     "selector without index pages now",
			settings: Settings{IndexPagesNowSelector: "template=home"},
		},
		{
			name:     "unsanitized index field",
			settings: Settings{IndexField: "search-index!"},
			wantErr:  `index_field "search-index!"`,
		},
		{
			name:     "empty indexed field",
			settings: Settings{IndexedFields: []string{"title", " "}},
			wantErr:  "indexed_fields[1] is empty",
		},
		{
			name:     "blacklisted fieldtype",
			settings: Settings{CompatibleFieldtypes: []string{"FieldtypeText", "FieldtypePassword"}},
			wantErr:  `unsupported fieldtype "FieldtypePassword" (never allowed: FieldtypePassword, FieldtypeFieldsetOpen, FieldtypeFieldsetClose, FieldtypeFieldsetPage)`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate("settings.toml")
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
			require.Contains(t, err.Error(), "settings.toml")
		})
	}
}
