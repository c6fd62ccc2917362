package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
)

// MoveOptions defines the options for the Move command
type MoveOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Src is the index of the component to reposition
	Src int
	// Dst is the index it lands on; intervening components shift by one
	Dst int
}

// MoveResult holds the edited list
type MoveResult struct {
	List    pathlist.List
	Changed bool
}

// Move repositions a single component from Src to Dst. Both indices are
// bounds-checked against the current list.
func Move(opts MoveOptions) (*MoveResult, error) {
	logger := logging.GetLogger("commands.move")
	list := pathlist.Parse(opts.Value, opts.Separator)

	out, err := list.Move(opts.Src, opts.Dst)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("src", opts.Src).Int("dst", opts.Dst).Msg("Moved")

	return &MoveResult{List: out, Changed: opts.Src != opts.Dst}, nil
}
