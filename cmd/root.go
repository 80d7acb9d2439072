/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE resolves the active platform variant once per process:
// the --platform flag wins, then the config file, then the build target.
// Commands read the result through cmd.Platform() and never re-evaluate it.

package cmd

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/jpl-au/pathcalc/extension"
	"github.com/jpl-au/pathcalc/internal/config"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathcalc",
	Short: "Platform-aware textual path arithmetic",
	Long: `Resolve, relate and rename path strings without touching a filesystem.

Paths are treated as text: nothing needs to exist, no symlinks are followed.
Absolute-path rules come from the selected platform (generic, windows or
native); see 'pathcalc guide' for the semantics.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Resolve the platform variant once: flag > config > build target.
		name := platform
		if name == "" {
			if cfg, err := config.Load(); err == nil {
				name = cfg.Platform
			}
		}
		v, err := textpath.ParseVariant(name)
		if err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return err
		}
		activeVariant = v

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
