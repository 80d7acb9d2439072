// Package core provides the core extension for pathcalc.
// It registers commands: guide, config, version.
package core

import (
	"github.com/jpl-au/pathcalc/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides fundamental pathcalc commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newGuideCmd(),
		newConfigCmd(),
		newVersionCmd(),
	}
}
