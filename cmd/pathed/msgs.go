package pathed

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Edit colon-delimited search-path variables"
	MsgRootLong        = `pathed edits search-path environment variables such as PATH, MANPATH,
or LD_LIBRARY_PATH. Each invocation applies one operation to the
variable's component list and prints the re-export statement for your
shell to eval; install the wrapper from 'pathed snippet' to make that
automatic.

Operations: show (default), remove|rm, in, prepend|pre, add, move|mv,
clean. Short variable names like 'path' or 'man' resolve through the
alias table (see 'pathed genconfig').`
	MsgVersionShort    = "Print version information"
	MsgSnippetShort    = "Output shell integration snippet"
	MsgSnippetLong     = `Print the shell function that wraps pathed so export statements are
eval'd in your current shell. Add it to your shell's rc file:

  # bash/zsh
  eval "$(command pathed snippet)"

  # fish
  command pathed snippet --shell fish | source`
	MsgGenConfigShort  = "Print the default configuration as TOML"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSep     = "Component delimiter"
	MsgFlagShell   = "Export syntax: bash, zsh, or fish (default: detect from $SHELL)"
	MsgFlagReal    = "clean: also collapse entries naming the same file (device+inode)"

	// Error messages
	MsgErrNoVarName  = "VARNAME is required"
	MsgErrLoadConfig = "failed to load configuration: %w"
)
