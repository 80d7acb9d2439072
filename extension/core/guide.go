// guide.go implements the "pathcalc guide" command for documentation access.
//
// Guides are embedded in the binary via the guide package, so documentation
// is always available without external files. Terminal output gets glamour
// rendering for readability; pipe/redirect gets raw markdown for machine
// consumption.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [page]",
		Short: "Show the pathcalc usage guide",
		Long: `Outputs the pathcalc guide.

  pathcalc guide           # main guide
  pathcalc guide resolve   # resolution and relative-path semantics
  pathcalc guide windows   # drive-letter and UNC handling`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
