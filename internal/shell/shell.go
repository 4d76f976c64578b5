// Package shell generates the shell integration function and wires it
// into the user's shell startup files. The binary prints a command
// (cd or editor invocation) on stdout while the picker renders on
// stderr; the wrapper function captures stdout and evals it.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trygo/internal/config"
	"trygo/internal/errors"
	"trygo/internal/log"
)

// Shell identifies a supported shell.
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
	NuShell    Shell = "nushell"
)

// Shells lists the supported shells.
func Shells() []Shell {
	return []Shell{Bash, Zsh, Fish, PowerShell, NuShell}
}

// Parse maps a user-supplied name onto a Shell.
func Parse(name string) (Shell, error) {
	switch strings.ToLower(name) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	case "nushell", "nu":
		return NuShell, nil
	}
	return "", errors.NewSetupError("unsupported shell", name, errors.ShellSetupFailed, nil)
}

const posixScript = `trygo() {
    # Pass flags/options straight through without capturing
    for arg in "$@"; do
        case "$arg" in
            -*) command trygo "$@"; return ;;
        esac
    done

    # The picker renders on stderr; stdout carries the cd command.
    local output
    output=$(command trygo "$@")

    if [ -n "$output" ]; then
        eval "$output"
    fi
}
`

const fishScript = `function trygo
    # Pass flags/options straight through without capturing
    for arg in $argv
        if string match -q -- '-*' $arg
            command trygo $argv
            return
        end
    end

    # The picker renders on stderr; stdout carries the cd command.
    set command (command trygo $argv | string collect)

    if test -n "$command"
        eval $command
    end
end
`

const powerShellScript = `# trygo integration for PowerShell
function trygo {
    # Pass flags/options straight through without capturing
    foreach ($a in $args) {
        if ($a -like '-*') {
            & trygo.exe @args
            return
        }
    }

    # The picker renders on stderr; stdout carries the command to run.
    $command = (trygo.exe @args)

    if ($command) {
        Invoke-Expression $command
    }
}
`

const nuShellScript = `def --wrapped trygo [...args] {
    # Pass flags/options straight through without capturing
    for arg in $args {
        if ($arg | str starts-with '-') {
            ^trygo ...$args
            return
        }
    }

    # The picker renders on stderr; stdout carries the cd command.
    let output = (trygo ...$args)

    if ($output | is-not-empty) {
        let $path = ($output | split row ' ').1 | str replace --all "'" ''
        cd $path
    }
}
`

// Script returns the integration function source for the given shell.
func Script(sh Shell) string {
	switch sh {
	case Fish:
		return fishScript
	case PowerShell:
		return powerShellScript
	case NuShell:
		return nuShellScript
	default:
		return posixScript
	}
}

// IntegrationPath returns where the integration file is written.
func IntegrationPath(sh Shell) string {
	switch sh {
	case Fish:
		// Fish autoloads from its own functions directory
		return filepath.Join(filepath.Dir(config.Dir()), "fish", "functions", "trygo.fish")
	case Zsh:
		return filepath.Join(config.Dir(), "trygo.zsh")
	case Bash:
		return filepath.Join(config.Dir(), "trygo.bash")
	case PowerShell:
		return filepath.Join(config.Dir(), "trygo.ps1")
	case NuShell:
		return filepath.Join(config.Dir(), "trygo.nu")
	}
	return filepath.Join(config.Dir(), "trygo.sh")
}

// IsConfigured reports whether the integration file already exists.
func IsConfigured(sh Shell) bool {
	_, err := os.Stat(IntegrationPath(sh))
	return err == nil
}

// Setup writes the integration file and patches the shell's RC file so
// it gets sourced. Fish needs no RC patching; for shells whose RC file
// is missing, instructions are printed instead.
func Setup(sh Shell) error {
	scriptPath, err := writeIntegrationFile(sh)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.NewSetupError("could not find home directory", string(sh), errors.ShellSetupFailed, err)
	}

	switch sh {
	case Fish:
		fmt.Fprintf(os.Stderr, "Restart your shell or run 'source %s' to apply changes.\n", scriptPath)
		return nil
	case Zsh:
		return appendSourceLine(filepath.Join(home, ".zshrc"), fmt.Sprintf("source '%s'", scriptPath))
	case Bash:
		return appendSourceLine(filepath.Join(home, ".bashrc"), fmt.Sprintf("source '%s'", scriptPath))
	case PowerShell:
		return setupPowerShell(home, scriptPath)
	case NuShell:
		return setupNuShell(scriptPath)
	}
	return nil
}

func writeIntegrationFile(sh Shell) (string, error) {
	path := IntegrationPath(sh)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.NewSetupError("failed to create integration directory", string(sh), errors.ShellSetupFailed, err)
	}
	if err := os.WriteFile(path, []byte(Script(sh)), 0644); err != nil {
		return "", errors.NewSetupError("failed to write integration file", string(sh), errors.ShellSetupFailed, err)
	}
	log.LogWithFields(log.F("shell", sh), log.F("path", path)).Debug("integration file written")
	fmt.Fprintf(os.Stderr, "%s function file created at: %s\n", sh, path)
	return path, nil
}

// appendSourceLine adds a source command to an RC file if not already
// present. A missing RC file is not patched; the user is told what to
// add instead.
func appendSourceLine(rcPath, sourceCmd string) error {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "You need to add the following line to %s:\n%s\n", rcPath, sourceCmd)
			return nil
		}
		return errors.NewSetupError("failed to read rc file", rcPath, errors.ShellSetupFailed, err)
	}

	if strings.Contains(string(data), sourceCmd) {
		fmt.Fprintf(os.Stderr, "Configuration already present in %s\n", rcPath)
		return nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewSetupError("failed to open rc file", rcPath, errors.ShellSetupFailed, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# trygo integration\n%s\n", sourceCmd); err != nil {
		return errors.NewSetupError("failed to update rc file", rcPath, errors.ShellSetupFailed, err)
	}
	fmt.Fprintf(os.Stderr, "Added configuration to %s\n", rcPath)
	return nil
}

func setupPowerShell(home, scriptPath string) error {
	profilePS7 := filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	profilePS5 := filepath.Join(home, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")

	profilePath := profilePS7
	if _, err := os.Stat(profilePS7); err != nil {
		if _, err := os.Stat(profilePS5); err == nil {
			profilePath = profilePS5
		}
	}

	sourceCmd := fmt.Sprintf(". '%s'", scriptPath)
	if _, err := os.Stat(profilePath); err == nil {
		return appendSourceLine(profilePath, sourceCmd)
	}

	if err := os.MkdirAll(filepath.Dir(profilePath), 0755); err != nil {
		return errors.NewSetupError("failed to create profile directory", profilePath, errors.ShellSetupFailed, err)
	}
	content := fmt.Sprintf("# trygo integration\n%s\n", sourceCmd)
	if err := os.WriteFile(profilePath, []byte(content), 0644); err != nil {
		return errors.NewSetupError("failed to create profile", profilePath, errors.ShellSetupFailed, err)
	}
	fmt.Fprintf(os.Stderr, "PowerShell profile created and configured at: %s\n", profilePath)
	return nil
}

func setupNuShell(scriptPath string) error {
	base, err := os.UserConfigDir()
	if err != nil {
		return errors.NewSetupError("could not find config directory", "nushell", errors.ShellSetupFailed, err)
	}
	nuConfig := filepath.Join(base, "nushell", "config.nu")
	sourceCmd := fmt.Sprintf("source '%s'", scriptPath)

	if _, err := os.Stat(nuConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Could not find config.nu at %s\nPlease add the following line manually:\n%s\n", nuConfig, sourceCmd)
		return nil
	}
	return appendSourceLine(nuConfig, sourceCmd)
}
