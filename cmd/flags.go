/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/pathcalc/textpath"
)

var validOutputFormats = []string{"json"}

var (
	output   string
	platform string

	// activeVariant is resolved once in PersistentPreRunE.
	activeVariant = textpath.Native
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "",
		"output format (json)")
	rootCmd.PersistentFlags().StringVarP(&platform, "platform", "p", "",
		"platform variant: generic, windows or native (default: config, else native)")
}

// Exported accessors for extensions.
// Extensions use these to access shared CLI state.

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Platform returns the platform variant resolved for this invocation.
func Platform() textpath.Variant { return activeVariant }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON reports whether JSON output was requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the
	// error, checking it is futile. Returning nil suppresses Cobra's
	// duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}
