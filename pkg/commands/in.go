package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/paths"
)

// InOptions defines the options for the In command
type InOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Item is always treated as a path, never as an index
	Item string
}

// InResult holds the membership outcome
type InResult struct {
	Found bool
}

// In reports whether some component's canonical form matches Item.
// Read-only; the caller maps Found onto the process exit status.
func In(opts InOptions) (*InResult, error) {
	logger := logging.GetLogger("commands.in")
	list := pathlist.Parse(opts.Value, opts.Separator)

	found := list.Contains(opts.Item, paths.CanonicalEqual)
	logger.Debug().Str("item", opts.Item).Bool("found", found).Msg("Membership test")

	return &InResult{Found: found}, nil
}
