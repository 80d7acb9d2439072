// windows.go implements the Windows-aware half of the variant dispatch.
//
// The Windows rules wrap the generic algorithm: detect a drive-letter or UNC
// prefix, swap it for a plain leading separator, run the generic resolution,
// then reattach the prefix to the result. The prefix patterns below are the
// contract; IsAbsolute and Relative both key off them.

package textpath

import (
	"regexp"

	"github.com/jpl-au/pathcalc/textpath/generic"
)

var (
	// winPrefix matches a UNC marker or a drive-letter prefix.
	winPrefix = regexp.MustCompile(`^(\\\\|[A-Za-z]:)`)

	// winPrefixOrSlash additionally accepts a separator followed by a
	// non-backslash character or end of string, so a bare "/" or a
	// drive-relative "\x" classifies as absolute while still excluding
	// a doubled separator that is not a UNC marker.
	winPrefixOrSlash = regexp.MustCompile(`^(\\\\|[A-Za-z]:|[/\\]([^\\]|$))`)
)

const uncPrefix = `\\`

// resolveWindows resolves path2 against path1 under the Windows rules.
//
// When neither input carries a drive or UNC prefix the inputs behave exactly
// like generic paths. Otherwise the prefix of the later prefixed input wins
// (consistent with the generic override rule), both inputs are stripped to
// separator-led form, and the saved prefix is reattached afterwards.
func resolveWindows(path1, path2 string) string {
	prefix := ""
	for _, p := range []string{path1, path2} {
		if m := winPrefix.FindString(p); m != "" {
			prefix = m
		}
	}
	if prefix == "" {
		return generic.Resolve(path1, path2)
	}

	r := generic.Resolve(
		winPrefix.ReplaceAllString(path1, "/"),
		winPrefix.ReplaceAllString(path2, "/"),
	)
	if prefix == uncPrefix {
		// The generic result is rooted; its leading "/" becomes the marker.
		return uncPrefix + r[1:]
	}
	return prefix + r
}

// relativeWindows computes a relative path between two Windows-absolute
// paths. Panics when either argument fails the Windows absoluteness check.
func relativeWindows(fromPath, toPath string) string {
	if !IsAbsolute(fromPath, Windows) || !IsAbsolute(toPath, Windows) {
		panic("textpath: Relative requires absolute paths")
	}

	fromPrefix := winPrefixOrSlash.FindString(fromPath)
	toPrefix := winPrefixOrSlash.FindString(toPath)
	if fromPrefix != toPrefix {
		// Different roots: no ".." sequence bridges them.
		return ResolveOne(toPath, Windows)
	}

	return generic.Relative(stripPrefix(fromPath, fromPrefix), stripPrefix(toPath, fromPrefix))
}

// stripPrefix removes the matched prefix and guarantees a separator-led
// remainder for the generic algorithm.
func stripPrefix(path, prefix string) string {
	path = path[len(prefix):]
	if !generic.StartsWithSeparator(path) {
		path = "/" + path
	}
	return path
}
