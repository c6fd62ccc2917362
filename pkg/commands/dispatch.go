package commands

import (
	"strconv"

	"github.com/arthur-debert/pathed/pkg/errors"
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/pathlist"
)

// CommandType represents the type of list operation being executed
type CommandType string

const (
	CommandShow    CommandType = "show"
	CommandRemove  CommandType = "remove"
	CommandIn      CommandType = "in"
	CommandPrepend CommandType = "prepend"
	CommandAdd     CommandType = "add"
	CommandMove    CommandType = "move"
	CommandClean   CommandType = "clean"
)

// verbAliases maps every accepted verb spelling onto its command
var verbAliases = map[string]CommandType{
	"show":    CommandShow,
	"ls":      CommandShow,
	"remove":  CommandRemove,
	"rm":      CommandRemove,
	"in":      CommandIn,
	"prepend": CommandPrepend,
	"pre":     CommandPrepend,
	"add":     CommandAdd,
	"move":    CommandMove,
	"mv":      CommandMove,
	"clean":   CommandClean,
}

// ResolveVerb maps a verb or one of its aliases onto a CommandType.
// An empty verb defaults to show.
func ResolveVerb(verb string) (CommandType, error) {
	if verb == "" {
		return CommandShow, nil
	}
	if cmd, ok := verbAliases[verb]; ok {
		return cmd, nil
	}
	return "", errors.Newf(errors.ErrUnknownCommand, "unknown command %q", verb).
		WithDetail("verb", verb)
}

// DispatchOptions contains all possible options for list operations.
// Each command uses only the fields it needs.
type DispatchOptions struct {
	// Value is the current raw value of the backing variable
	Value string
	// Separator is the component delimiter
	Separator string
	// Args are the operation's positional arguments
	Args []string
	// Real enables device+inode matching for clean
	Real bool
}

// DispatchResult is the uniform outcome of a dispatched operation
type DispatchResult struct {
	// List is the resulting component list (also set for show)
	List pathlist.List
	// Changed indicates the backing variable needs rewriting
	Changed bool
	// Listing indicates the caller should render List instead of exporting
	Listing bool
	// Found carries the membership outcome for in
	Found bool
}

// Dispatch is the central dispatcher for all list operations. It maps a
// resolved command plus raw arguments onto the operation functions,
// validating argument presence and shape on the way.
func Dispatch(cmdType CommandType, opts DispatchOptions) (*DispatchResult, error) {
	logger := logging.GetLogger("commands.dispatch")
	logger.Debug().
		Str("command", string(cmdType)).
		Strs("args", opts.Args).
		Str("separator", opts.Separator).
		Msg("Dispatching list operation")

	switch cmdType {
	case CommandShow:
		result, err := Show(ShowOptions{Value: opts.Value, Separator: opts.Separator})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Listing: true}, nil

	case CommandRemove:
		item, err := requireItem(opts.Args, "remove")
		if err != nil {
			return nil, err
		}
		result, err := Remove(RemoveOptions{Value: opts.Value, Separator: opts.Separator, Item: item})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Changed: result.Changed}, nil

	case CommandIn:
		item, err := requireItem(opts.Args, "in")
		if err != nil {
			return nil, err
		}
		result, err := In(InOptions{Value: opts.Value, Separator: opts.Separator, Item: item})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{Found: result.Found}, nil

	case CommandPrepend:
		item, err := requireItem(opts.Args, "prepend")
		if err != nil {
			return nil, err
		}
		result, err := Prepend(PrependOptions{Value: opts.Value, Separator: opts.Separator, Item: item})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Changed: result.Changed}, nil

	case CommandAdd:
		item, err := requireItem(opts.Args, "add")
		if err != nil {
			return nil, err
		}
		result, err := Add(AddOptions{Value: opts.Value, Separator: opts.Separator, Item: item})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Changed: result.Changed}, nil

	case CommandMove:
		src, dst, err := parseMoveArgs(opts.Args)
		if err != nil {
			return nil, err
		}
		result, err := Move(MoveOptions{Value: opts.Value, Separator: opts.Separator, Src: src, Dst: dst})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Changed: result.Changed}, nil

	case CommandClean:
		result, err := Clean(CleanOptions{Value: opts.Value, Separator: opts.Separator, Real: opts.Real})
		if err != nil {
			return nil, err
		}
		return &DispatchResult{List: result.List, Changed: result.Changed}, nil

	default:
		return nil, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", cmdType)
	}
}

// requireItem extracts the single ITEM argument an operation needs
func requireItem(args []string, verb string) (string, error) {
	if len(args) < 1 {
		return "", errors.Newf(errors.ErrMissingArgument, "%s requires an ITEM argument", verb)
	}
	return args[0], nil
}

// parseMoveArgs parses SRC and the optional DST (default 0)
func parseMoveArgs(args []string) (src, dst int, err error) {
	if len(args) < 1 {
		return 0, 0, errors.New(errors.ErrMissingArgument, "move requires a SRC index")
	}

	src, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Newf(errors.ErrInvalidInput, "move SRC must be an integer, got %q", args[0])
	}

	dst = 0
	if len(args) >= 2 {
		dst, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, errors.Newf(errors.ErrInvalidInput, "move DST must be an integer, got %q", args[1])
		}
	}

	return src, dst, nil
}
