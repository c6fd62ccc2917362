package commands

import (
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/paths"
)

// CleanOptions defines the options for the Clean command
type CleanOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Real additionally treats components naming the same filesystem
	// object (device+inode) as duplicates
	Real bool
}

// CleanResult holds the deduplicated list
type CleanResult struct {
	List    pathlist.List
	Changed bool
}

// Clean drops later duplicates, keeping the first occurrence of each
// equivalence class in original order. Equality is literal text; with
// Real set, two components also match when they resolve to the same
// underlying file.
func Clean(opts CleanOptions) (*CleanResult, error) {
	logger := logging.GetLogger("commands.clean")
	list := pathlist.Parse(opts.Value, opts.Separator)

	eq := pathlist.Literal
	if opts.Real {
		eq = func(a, b string) bool {
			return a == b || paths.SameFile(a, b)
		}
	}

	out := list.Clean(eq)
	logger.Debug().
		Int("before", list.Len()).
		Int("after", out.Len()).
		Bool("real", opts.Real).
		Msg("Cleaned")

	return &CleanResult{List: out, Changed: out.Len() != list.Len()}, nil
}
