package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/paths"
)

// AddOptions defines the options for the Add command
type AddOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Item is the path to append if absent
	Item string
}

// AddResult holds the edited list
type AddResult struct {
	List    pathlist.List
	Changed bool
}

// Add appends Item's canonical form at the end unless some component
// already matches it. Adding an existing item changes nothing: no
// reorder, no duplicate.
func Add(opts AddOptions) (*AddResult, error) {
	logger := logging.GetLogger("commands.add")
	list := pathlist.Parse(opts.Value, opts.Separator)

	canonical := paths.Canonicalize(opts.Item)
	out := list.Add(canonical, paths.CanonicalEqual)
	changed := out.Len() != list.Len()
	logger.Debug().Str("item", opts.Item).Str("canonical", canonical).Bool("changed", changed).Msg("Add")

	return &AddResult{List: out, Changed: changed}, nil
}
