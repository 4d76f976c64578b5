package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trygo/internal/config"
	"trygo/internal/errors"
	"trygo/internal/log"
	"trygo/internal/resolve"
	"trygo/internal/tui"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile   string
	path         string
	theme        string
	debug        bool
	noDatePrefix bool
	editor       bool
	noWatch      bool
}

// loadConfig resolves the session configuration from flags, env and
// the config file.
func loadConfig(flags rootFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.configFile != "" {
		cfg, err = config.LoadFile(flags.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if flags.path != "" {
		cfg.Path = flags.path
		// Flag beats the TRYGO_PATH env override too
		os.Setenv(config.EnvPath, "")
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// setupLogging keeps the terminal clean: debug sessions log to a file
// in the config dir, everything else is silent.
func setupLogging(debug bool) {
	if debug {
		log.SetDebug(true)
		log.Configure(log.WithFile(filepath.Join(config.Dir(), "trygo.log")))
		return
	}
	log.Configure(log.WithDiscard())
}

func runPicker(cmd *cobra.Command, flags rootFlags, initialQuery string) error {
	setupLogging(flags.debug)
	defer log.Close()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	baseDir := cfg.TriesDir()
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return errors.NewPathError("cannot create tries directory", baseDir, errors.CreateFailed, err)
	}

	candidate, aborted, err := tui.Run(tui.Options{
		BaseDir:      baseDir,
		Ignore:       cfg.IgnoreGlobs(),
		Theme:        cfg.Theme,
		InitialQuery: initialQuery,
		Watch:        !flags.noWatch,
	})
	if err != nil {
		return err
	}
	if aborted {
		// User cancelled: nothing on stdout, nothing created
		return nil
	}

	datePrefix := cfg.DatePrefix() && !flags.noDatePrefix
	outcome, path, err := resolve.Resolve(baseDir, candidate, resolve.Options{ApplyDatePrefix: datePrefix})
	if err != nil {
		return err
	}
	if outcome.None() {
		return nil
	}

	log.LogWithFields(log.F("outcome", outcome.Kind), log.F("name", outcome.Name)).Debug("session resolved")
	fmt.Fprintln(cmd.OutOrStdout(), emitCommand(path, flags.editor, cfg.EditorCommand()))
	return nil
}

// emitCommand builds the single line the shell wrapper evals.
func emitCommand(path string, wantEditor bool, editor string) string {
	if wantEditor && editor != "" {
		return fmt.Sprintf("%s %s", editor, shellQuote(path))
	}
	return fmt.Sprintf("cd %s", shellQuote(path))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
