// abs.go implements the "pathcalc abs" command for absoluteness checks.

package resolve

import (
	"fmt"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/jpl-au/pathcalc/textpath"
	"github.com/spf13/cobra"
)

func newAbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abs PATH",
		Short: "Report whether a path is absolute",
		Long: `Print "true" when PATH is absolute under the active platform.

The generic platform treats only separator-led paths as absolute; the
windows platform also accepts drive letters (C:) and UNC markers (\\).

Examples:
  pathcalc abs /a/b                 # true
  pathcalc abs C:/x                 # false (generic)
  pathcalc -p windows abs C:/x      # true`,
		Args: cobra.ExactArgs(1),
		RunE: runAbs,
	}
}

func runAbs(_ *cobra.Command, args []string) error {
	v := cmd.Platform()
	abs := textpath.IsAbsolute(args[0], v)

	log.Event("resolve:abs", "classify").
		Variant(v.String()).
		Inputs(args[0]).
		Result(fmt.Sprintf("%t", abs)).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]bool{"result": abs})
	}
	fmt.Fprintln(cmd.Out(), abs)
	return nil
}
