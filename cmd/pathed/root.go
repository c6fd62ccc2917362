package pathed

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathed/internal/version"
	"github.com/arthur-debert/pathed/pkg/commands"
	"github.com/arthur-debert/pathed/pkg/config"
	"github.com/arthur-debert/pathed/pkg/display"
	"github.com/arthur-debert/pathed/pkg/errors"
	"github.com/arthur-debert/pathed/pkg/logging"
	"github.com/arthur-debert/pathed/pkg/shell"
	"github.com/arthur-debert/pathed/pkg/ui"
)

// ErrNotInList signals a failed membership test. It carries no message:
// the in command reports through the exit status alone.
var ErrNotInList = stderrors.New("not in list")

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		separator string
		shellName string
		real      bool
	)

	rootCmd := &cobra.Command{
		Use:     "pathed VARNAME [COMMAND [ARGS...]]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, separator, shellName, real)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&separator, "sep", "", MsgFlagSep)
	rootCmd.PersistentFlags().StringVar(&shellName, "shell", "", MsgFlagShell)
	rootCmd.Flags().BoolVar(&real, "real", false, MsgFlagReal)

	// Management subcommands. A variable sharing one of these names
	// must be reached through a config alias.
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSnippetCmd(&shellName))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

// runEdit is the VARNAME [COMMAND [ARGS...]] dispatch path
func runEdit(cmd *cobra.Command, args []string, separator, shellName string, real bool) error {
	if len(args) == 0 {
		return errors.New(errors.ErrMissingArgument, MsgErrNoVarName)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	varName := cfg.ResolveVariable(args[0])

	verb := ""
	var opArgs []string
	if len(args) > 1 {
		verb = args[1]
		opArgs = args[2:]
	}

	cmdType, err := commands.ResolveVerb(verb)
	if err != nil {
		return err
	}

	if separator == "" {
		separator = cfg.Separator
	}
	if separator == "" {
		separator = ":"
	}

	value := os.Getenv(varName)
	log.Debug().
		Str("variable", varName).
		Str("command", string(cmdType)).
		Str("value", value).
		Msg("Editing variable")

	result, err := commands.Dispatch(cmdType, commands.DispatchOptions{
		Value:     value,
		Separator: separator,
		Args:      opArgs,
		Real:      real,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Listing:
		renderer := display.NewRenderer(ui.FormatAuto.Resolve(os.Stdout))
		fmt.Fprint(cmd.OutOrStdout(), renderer.Listing(result.List))

	case cmdType == commands.CommandIn:
		if !result.Found {
			return ErrNotInList
		}

	default:
		dialect := shell.DetectDialect(firstNonEmpty(shellName, cfg.Shell))
		fmt.Fprintln(cmd.OutOrStdout(), shell.ExportStatement(dialect, varName, result.List.String(separator)))
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pathed version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newSnippetCmd(shellName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "snippet",
		Short: MsgSnippetShort,
		Long:  MsgSnippetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dialect := shell.DetectDialect(firstNonEmpty(*shellName, cfg.Shell))
			fmt.Fprintln(cmd.OutOrStdout(), shell.IntegrationSnippet(dialect))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
