// config.go implements the "pathcalc config" command.
//
// With no arguments it shows the effective configuration and where it came
// from. "config platform VALUE" writes the default platform, globally by
// default or to ./.pathcalc/config.yaml with --local.

package core

import (
	"fmt"

	"github.com/jpl-au/pathcalc/cmd"
	"github.com/jpl-au/pathcalc/internal/config"
	"github.com/jpl-au/pathcalc/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var local bool

	c := &cobra.Command{
		Use:   "config [platform VALUE]",
		Short: "Show or set pathcalc configuration",
		Long: `Show or set pathcalc configuration.

The only key is "platform": the default variant used when --platform is not
given. Valid values are generic, windows and native.

  pathcalc config                        # show effective config
  pathcalc config platform windows       # set globally (~/.pathcalc)
  pathcalc config platform generic --local   # set for this directory`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return showConfig()
			case 2:
				if args[0] != "platform" {
					return cmd.PrintJSONError(fmt.Errorf("unknown config key: %q (valid: platform)", args[0]))
				}
				return setPlatform(args[1], local)
			default:
				return cmd.PrintJSONError(fmt.Errorf("config takes no arguments or a key and a value"))
			}
		},
	}

	c.Flags().BoolVar(&local, "local", false,
		"write to ./.pathcalc/config.yaml instead of the global config")
	return c
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	scope := "global"
	if cfg.Scope() == config.ScopeLocal {
		scope = "local"
	}
	platform := cfg.Platform
	if platform == "" {
		platform = "native"
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"platform": platform, "scope": scope})
	}
	fmt.Fprintf(cmd.Out(), "platform: %s (%s)\n", platform, scope)
	return nil
}

func setPlatform(value string, local bool) error {
	scope := config.ScopeGlobal
	if local {
		scope = config.ScopeLocal
	}

	l := log.Event("core:config", "configure").Detail("platform", value)

	cfg, err := config.LoadScope(scope)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}
	cfg.Platform = value
	if err := cfg.Save(); err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	l.Result(value).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"platform": value})
	}
	fmt.Fprintf(cmd.Out(), "platform set to %s\n", value)
	return nil
}
