// relative.go implements the "pathcalc relative" command.
//
// Separated from resolve.go because relative carries the one precondition in
// the CLI: both arguments must be absolute under the active platform. The
// library treats a violation as a panic-level contract breach, so the CLI
// validates first and reports a normal error instead.

package resolve

import (
	"fmt"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

func newRelativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative FROM TO",
		Short: "Compute the relative path between two absolute paths",
		Long: `Compute the shortest ".."/segment route from FROM to TO.

Both paths must be absolute under the active platform. Identical paths give
an empty result. Under the windows platform, paths with different prefixes
(drive letters, UNC markers) have no common root; the resolved TO comes
back instead of a relative route.

Examples:
  pathcalc relative /a/b /a/b/c              # c
  pathcalc relative /a/b/c /a                # ../..
  pathcalc -p windows relative C:/a D:/b     # D:/b`,
		Args: cobra.ExactArgs(2),
		RunE: runRelative,
	}
}

func runRelative(_ *cobra.Command, args []string) error {
	v := cmd.Platform()
	from, to := args[0], args[1]

	l := log.Event("resolve:relative", "relative").
		Variant(v.String()).
		Inputs(from, to)

	for _, p := range args {
		if !textpath.IsAbsolute(p, v) {
			err := fmt.Errorf("path %q is not absolute under the %s platform", p, v)
			l.Write(err)
			return cmd.PrintJSONError(err)
		}
	}

	r := textpath.Relative(from, to, v)
	l.Result(r).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"result": r})
	}
	fmt.Fprintln(cmd.Out(), r)
	return nil
}
