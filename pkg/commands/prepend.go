package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/paths"
)

// PrependOptions defines the options for the Prepend command
type PrependOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Item is the path to promote or insert at the front
	Item string
}

// PrependResult holds the edited list
type PrependResult struct {
	List    pathlist.List
	Changed bool
}

// Prepend removes every component matching Item's canonical form and
// inserts the canonical form at position 0: promote or insert at front,
// with no duplicate retained.
func Prepend(opts PrependOptions) (*PrependResult, error) {
	logger := logging.GetLogger("commands.prepend")
	list := pathlist.Parse(opts.Value, opts.Separator)

	canonical := paths.Canonicalize(opts.Item)
	out := list.Prepend(canonical, paths.CanonicalEqual)
	logger.Debug().Str("item", opts.Item).Str("canonical", canonical).Msg("Prepended")

	return &PrependResult{List: out, Changed: true}, nil
}
