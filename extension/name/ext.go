// ext.go implements the "pathcalc ext" command group.
//
// "ext change-last" is the second place the library draws a panic-level
// precondition (a multi-dot extension argument), so like "relative" the CLI
// validates up front and returns a normal error.

package name

import (
	"fmt"
	"strings"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

func newExtCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ext",
		Short: "Change or test path extensions",
		Long: `Change or test the extension of a path.

The leading dot on an extension argument is optional; "html" and ".html"
are equivalent everywhere.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	c.AddCommand(newExtChangeCmd(), newExtChangeLastCmd(), newExtHasCmd())
	return c
}

func newExtChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change PATH EXT",
		Short: "Replace the whole trailing extension run",
		Long: `Replace the entire trailing run of ".ext" groups on PATH.

A path without an extension gets EXT appended. EXT may itself contain
multiple dots.

Examples:
  pathcalc ext change a.x .y        # a.y
  pathcalc ext change a.x.y .z      # a.z
  pathcalc ext change a .z.w        # a.z.w`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r := textpath.ChangeExtension(args[0], args[1])

			log.Event("name:ext-change", "rename").
				Inputs(args...).
				Result(r).
				Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"result": r})
			}
			fmt.Fprintln(cmd.Out(), r)
			return nil
		},
	}
}

func newExtChangeLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-last PATH EXT",
		Short: "Replace only the final extension",
		Long: `Replace only the final ".ext" group on PATH.

EXT must be a single extension; use "ext change" for multi-part ones.

Examples:
  pathcalc ext change-last a.x.y .z       # a.x.z
  pathcalc ext change-last a.tar.gz bz2   # a.tar.bz2`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			path, ext := args[0], args[1]

			l := log.Event("name:ext-change-last", "rename").Inputs(args...)

			if strings.Contains(strings.TrimPrefix(ext, "."), ".") {
				err := fmt.Errorf("extension %q contains more than one dot; use 'ext change'", ext)
				l.Write(err)
				return cmd.PrintJSONError(err)
			}

			r := textpath.ChangeLastExtension(path, ext)
			l.Result(r).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"result": r})
			}
			fmt.Fprintln(cmd.Out(), r)
			return nil
		},
	}
}

func newExtHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has PATH EXT...",
		Short: "Report whether a path has any of the given extensions",
		Long: `Print "true" when PATH ends with any of the given extensions.

Examples:
  pathcalc ext has a.x .x           # true
  pathcalc ext has a.z .x .y        # false`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			has := textpath.HasExtensions(args[0], args[1:]...)

			log.Event("name:ext-has", "classify").
				Inputs(args...).
				Result(fmt.Sprintf("%t", has)).
				Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]bool{"result": has})
			}
			fmt.Fprintln(cmd.Out(), has)
			return nil
		},
	}
}
