// Entry point for trygo: an interactive launcher for project scratch
// folders. The picker renders on stderr; stdout carries one shell
// command for the integration function to eval.
package main

import (
	"fmt"
	"os"

	"trygo/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.LogWithError(err).Debug("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command and wires up the subcommands.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "trygo [query]",
		Short: "Fuzzy-pick or create project scratch folders",
		Long: `trygo keeps a directory of dated "try" folders for quick experiments.

Run it bare to fuzzy-search existing tries; type a new name and it
creates the folder (date-prefixed by default). The selected path is
printed as a cd command on stdout, ready for the shell integration
function to eval. Run 'trygo setup --shell <name>' once to install it.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initialQuery := ""
			if len(args) > 0 {
				initialQuery = args[0]
			}
			return runPicker(cmd, flags, initialQuery)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/trygo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.path, "path", "", "tries directory (overrides config and TRYGO_PATH)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug logs to the config directory")
	rootCmd.Flags().StringVar(&flags.theme, "theme", "", "color theme for this session")
	rootCmd.Flags().BoolVar(&flags.noDatePrefix, "no-date-prefix", false, "create new folders without a date prefix")
	rootCmd.Flags().BoolVar(&flags.editor, "editor", false, "emit an editor command instead of cd")
	rootCmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "disable live directory rescans")

	rootCmd.AddCommand(NewListCmd(&flags))
	rootCmd.AddCommand(NewRmCmd(&flags))
	rootCmd.AddCommand(NewThemesCmd())
	rootCmd.AddCommand(NewSetupCmd())
	rootCmd.AddCommand(NewConfigCmd(&flags))

	return rootCmd
}
