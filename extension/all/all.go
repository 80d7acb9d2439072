// Package all imports all core pathcalc extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/pathcalc/extension/core"
	_ "github.com/jpl-au/pathcalc/extension/name"
	_ "github.com/jpl-au/pathcalc/extension/resolve"
)
