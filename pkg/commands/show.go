package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
)

// ShowOptions defines the options for the Show command
type ShowOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
}

// ShowResult holds the parsed list for rendering
type ShowResult struct {
	List pathlist.List
}

// Show parses the value into its component list. It is read-only: the
// backing variable is never rewritten.
func Show(opts ShowOptions) (*ShowResult, error) {
	logger := logging.GetLogger("commands.show")

	list := pathlist.Parse(opts.Value, opts.Separator)
	logger.Debug().Int("components", list.Len()).Msg("Parsed value")

	return &ShowResult{List: list}, nil
}
