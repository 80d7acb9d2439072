// Package name provides the base-name and extension manipulation extension
// for pathcalc. It registers commands: base, ext.
package name

import (
	"github.com/jpl-au/pathcalc/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the naming extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "name" - this extension covers base-name and extension
// commands.
func (e *Extension) Name() string { return "name" }

// Commands returns the naming CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newBaseCmd(),
		newExtCmd(),
	}
}
