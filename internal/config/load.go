package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/conn-castle/sitesearch/internal/messages"
)

// ErrSettingsValidation is a sentinel that wraps settings validation failures
// (as opposed to TOML syntax or filesystem errors).
// Callers can use errors.Is(err, ErrSettingsValidation) to tell them apart.
var ErrSettingsValidation = errors.New("settings validation failed")

// EnvPrefix prefixes environment variables that act as site overrides,
// e.g. SITESEARCH_INDEX_FIELD.
const EnvPrefix = "SITESEARCH"

// LoadSettings reads saved admin settings from path and validates them.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigMissingSettingsFileFmt, path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses and validates settings TOML from a source identifier.
// data is the TOML content; source is used in error messages.
func ParseSettings(data []byte, source string) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigInvalidSettingsFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return Settings{}, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrSettingsValidation, source, err)
	}
	if err := s.Validate(source); err != nil {
		return Settings{}, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrSettingsValidation, err)
	}
	return s, nil
}

// decodeStrict re-decodes the TOML data rejecting keys that toml.Unmarshal ignores.
func decodeStrict(data []byte) error {
	var s Settings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&s)
}

// ParseSettingsLenient parses settings TOML without validation.
// Returns an error only on TOML syntax errors, which makes it suitable for
// the editor that needs to read partially valid settings.
func ParseSettingsLenient(data []byte, source string) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigInvalidSettingsFmt, source, err)
	}
	return s, nil
}

// LoadSettingsLenient reads settings from path without validation.
func LoadSettingsLenient(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigMissingSettingsFileFmt, path, err)
	}
	return ParseSettingsLenient(data, path)
}

// MarshalSettings renders settings as TOML.
func MarshalSettings(s Settings) ([]byte, error) {
	return toml.Marshal(s)
}

// LoadSiteOverrides reads the host-wide override layer. Keys live in the
// [SearchEngine] table of the site config file at path (optional) and in
// SITESEARCH_<KEY> environment variables, which take precedence. The merged
// layer is validated like saved settings.
func LoadSiteOverrides(path string) (Settings, error) {
	v := viper.New()
	for _, key := range OptionKeys() {
		if err := v.BindEnv(siteKey(key), EnvPrefix+"_"+strings.ToUpper(key)); err != nil {
			return Settings{}, fmt.Errorf(messages.ConfigInvalidSiteFmt, path, err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return Settings{}, fmt.Errorf(messages.ConfigMissingSiteFileFmt, path, err)
			}
			return Settings{}, fmt.Errorf(messages.ConfigInvalidSiteFmt, path, err)
		}
	}
	site := siteSettings(v)
	source := path
	if source == "" {
		source = messages.ConfigSiteEnvSource
	}
	if err := site.Validate(source); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigSiteValidationFmt, err)
	}
	return site, nil
}

// siteKey maps an option key into the module's table; viper keys are case-insensitive.
func siteKey(key string) string {
	return strings.ToLower(ModuleName) + "." + key
}

func siteSettings(v *viper.Viper) Settings {
	return Settings{
		IndexField:                   strings.TrimSpace(v.GetString(siteKey(KeyIndexField))),
		IndexedFields:                splitList(v.GetStringSlice(siteKey(KeyIndexedFields))),
		CompatibleFieldtypes:         splitList(v.GetStringSlice(siteKey(KeyCompatibleFieldtypes))),
		OverrideCompatibleFieldtypes: v.GetBool(siteKey(KeyOverrideCompatibleFieldtypes)),
		IndexPagesNow:                v.GetBool(siteKey(KeyIndexPagesNow)),
		IndexPagesNowSelector:        strings.TrimSpace(v.GetString(siteKey(KeyIndexPagesNowSelector))),
	}
}

// splitList accepts both TOML arrays and comma or space separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, part)
		}
	}
	return out
}
