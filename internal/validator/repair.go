package validator

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
)

// ParamCreateIndexField is the query parameter driving self-repair.
const ParamCreateIndexField = "create_index_field"

// Values of ParamCreateIndexField. Only CreateRequested creates a field;
// CreateDone marks the redirect after creation and re-validates only.
const (
	CreateRequested = "1"
	CreateDone      = "2"
)

// ErrNoSearchEngine is returned when self-repair runs without a search engine.
var ErrNoSearchEngine = errors.New("search engine is not available")

// CreateLink returns the module settings URL carrying the given
// create_index_field state.
func CreateLink(adminURL string, state string) string {
	return adminURL + "module/edit?name=" + url.QueryEscape(config.ModuleName) + "&" + ParamCreateIndexField + "=" + state
}

// Repair asks the search engine to create an index field called name.
// It does not validate name; failures show up when the field is looked up.
func Repair(engine host.SearchEngine, name string, returnURL string) error {
	if engine == nil {
		return fmt.Errorf(messages.ValidatorRepairFailedFmt, name, ErrNoSearchEngine)
	}
	if _, err := engine.CreateIndexField(name, returnURL); err != nil {
		return fmt.Errorf(messages.ValidatorRepairFailedFmt, name, err)
	}
	return nil
}
