package main

import (
	"fmt"

	"trygo/internal/shell"

	"github.com/spf13/cobra"
)

// NewSetupCmd creates the setup command for installing the shell
// integration function.
func NewSetupCmd() *cobra.Command {
	var shellName string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install the shell integration function",
		Long: `Writes the trygo wrapper function for your shell and sources it from
your shell's startup file. The wrapper captures trygo's stdout and
evals it, so selecting a try actually changes your directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.Parse(shellName)
			if err != nil {
				return err
			}
			if printOnly {
				fmt.Fprint(cmd.OutOrStdout(), shell.Script(sh))
				return nil
			}
			return shell.Setup(sh)
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "target shell: bash, zsh, fish, powershell, nushell")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the integration script to stdout instead of installing")
	cmd.MarkFlagRequired("shell")

	return cmd
}
