// base.go implements the "pathcalc base" command.

package name

import (
	"fmt"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

func newBaseCmd() *cobra.Command {
	var strip []string

	c := &cobra.Command{
		Use:   "base PATH",
		Short: "Print the final segment of a path",
		Long: `Print the final "/"-delimited segment of PATH.

With --strip, a trailing extension run equal to one of the given extensions
is removed from the result. Extensions match with or without the leading
dot.

Examples:
  pathcalc base foo/qux.html                   # qux.html
  pathcalc base foo/qux.html --strip html      # qux
  pathcalc base a.tar.gz --strip .tar.gz       # a`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var r string
			if len(strip) > 0 {
				r = textpath.BaseNameWithoutExt(args[0], strip...)
			} else {
				r = textpath.BaseName(args[0])
			}

			log.Event("name:base", "rename").
				Inputs(args[0]).
				Detail("strip", strip).
				Result(r).
				Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"result": r})
			}
			fmt.Fprintln(cmd.Out(), r)
			return nil
		},
	}

	c.Flags().StringSliceVar(&strip, "strip", nil,
		"extensions to remove from the base name")
	return c
}
