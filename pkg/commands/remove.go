package commands

import (
	"strconv"

	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/paths"
)

// RemoveOptions defines the options for the Remove command
type RemoveOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Item is either a non-negative integer index or a path
	Item string
}

// RemoveResult holds the edited list
type RemoveResult struct {
	List    pathlist.List
	Changed bool
}

// Remove deletes one component by index, or every component whose
// canonical form matches Item. An out-of-range index is an error, not a
// silent no-op; removing a path with no matches leaves the list as-is.
func Remove(opts RemoveOptions) (*RemoveResult, error) {
	logger := logging.GetLogger("commands.remove")
	list := pathlist.Parse(opts.Value, opts.Separator)

	if index, err := strconv.ParseUint(opts.Item, 10, 32); err == nil {
		logger.Debug().Uint64("index", index).Msg("Removing by index")
		out, err := list.RemoveAt(int(index))
		if err != nil {
			return nil, err
		}
		return &RemoveResult{List: out, Changed: true}, nil
	}

	logger.Debug().Str("item", opts.Item).Msg("Removing by canonical match")
	out := list.RemoveAll(opts.Item, paths.CanonicalEqual)
	return &RemoveResult{List: out, Changed: out.Len() != list.Len()}, nil
}
