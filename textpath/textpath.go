// Package textpath provides platform-aware textual path arithmetic.
//
// All operations work on path strings only — nothing here touches a real
// filesystem. Every function takes an explicit Variant selecting the
// absolute-path rules: Generic recognises only a leading separator, Windows
// additionally recognises drive-letter (`C:`) and UNC (`\\`) prefixes.
// The Native constant is fixed at compile time to the host platform's
// variant.
//
// Results always use forward slashes, regardless of the separators in the
// input.
//
// # Example
//
//	textpath.Resolve("a/b", "..", textpath.Generic)        // "a"
//	textpath.Resolve("C:/", "a", textpath.Windows)         // "C:/a"
//	textpath.Relative("/a/b", "/c/d", textpath.Generic)    // "../../c/d"
package textpath

import (
	"fmt"

	"github.com/jpl-au/pathcalc/textpath/generic"
)

// Variant selects the absolute-path rules an operation runs under.
type Variant int

const (
	// Generic treats only separator-led paths as absolute.
	Generic Variant = iota
	// Windows additionally recognises drive-letter and UNC prefixes.
	Windows
)

// String returns the lower-case variant name used by flags and config.
func (v Variant) String() string {
	switch v {
	case Generic:
		return "generic"
	case Windows:
		return "windows"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts a flag or config value into a Variant.
// "native" resolves to the compile-time Native constant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "generic":
		return Generic, nil
	case "windows":
		return Windows, nil
	case "native", "":
		return Native, nil
	}
	return Generic, fmt.Errorf("unknown platform variant: %q (valid: generic, windows, native)", s)
}

// Resolve resolves path2 against path1 under the given variant.
//
// Behaviour:
//   - "." and ".." segments are eliminated
//   - if path2 is absolute, the result is a resolution of path2 alone
//   - backslash separators are replaced by forward slashes
//   - empty segments and trailing separators are eliminated
//   - under Windows, the prefix of the winning absolute path (drive letter
//     or UNC marker) is preserved on the result
func Resolve(path1, path2 string, variant Variant) string {
	if variant == Windows {
		return resolveWindows(path1, path2)
	}
	return generic.Resolve(path1, path2)
}

// ResolveN folds Resolve left to right over paths, so a later absolute path
// overrides everything before it. No paths resolves to the empty string.
func ResolveN(paths []string, variant Variant) string {
	if len(paths) == 0 {
		return ""
	}
	r := Resolve(paths[0], "", variant)
	for _, p := range paths[1:] {
		r = Resolve(r, p, variant)
	}
	return r
}

// ResolveOne normalises a single path under the given variant.
func ResolveOne(path string, variant Variant) string {
	return ResolveN([]string{path}, variant)
}

// IsAbsolute reports whether path is absolute under the given variant.
func IsAbsolute(path string, variant Variant) bool {
	if variant == Windows {
		return winPrefixOrSlash.MatchString(path)
	}
	return generic.StartsWithSeparator(path)
}

// Relative computes the shortest ".."/segment sequence leading from one
// absolute path to another. Identical paths yield the empty string.
//
// Under Windows, paths whose prefixes differ (distinct drive letters, or a
// drive letter versus a UNC marker) share no root that a relative path could
// bridge; Relative then returns the resolved form of toPath instead.
//
// Relative panics when either argument is not absolute under the variant.
// Callers validate with IsAbsolute first.
func Relative(fromPath, toPath string, variant Variant) string {
	if variant == Windows {
		return relativeWindows(fromPath, toPath)
	}
	return generic.Relative(fromPath, toPath)
}
