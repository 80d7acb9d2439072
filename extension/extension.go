// Package extension provides the plugin architecture for pathcalc.
// Extensions group related commands and register at init time, so command
// groups can be added without touching core code.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for pathcalc extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}
