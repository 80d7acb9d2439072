// Package resolve provides the path-resolution extension for pathcalc.
// It registers commands: resolve, relative, abs.
package resolve

import (
	"fmt"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/extension"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the resolution extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "resolve" - this extension covers resolution and
// relative-path commands.
func (e *Extension) Name() string { return "resolve" }

// Commands returns the resolution CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newResolveCmd(),
		newRelativeCmd(),
		newAbsCmd(),
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [path...]",
		Short: "Fold paths together into one normalised path",
		Long: `Resolve paths left to right into a single normalised path.

A later absolute path overrides everything before it. "." and ".." segments
are eliminated, backslashes become forward slashes, and empty segments and
trailing separators are removed.

Examples:
  pathcalc resolve a/b ..              # a
  pathcalc resolve /foo /bar           # /bar
  pathcalc -p windows resolve C:/ a    # C:/a`,
		Args: cobra.ArbitraryArgs,
		RunE: runResolve,
	}
}

func runResolve(_ *cobra.Command, args []string) error {
	v := cmd.Platform()
	r := textpath.ResolveN(args, v)

	log.Event("resolve:resolve", "resolve").
		Variant(v.String()).
		Inputs(args...).
		Result(r).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"result": r})
	}
	fmt.Fprintln(cmd.Out(), r)
	return nil
}
