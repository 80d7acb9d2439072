// Package generic implements platform-generic textual path arithmetic.
//
// Paths are plain strings, never checked against a real filesystem. The only
// absolute-path marker this package recognises is a leading separator; drive
// letters and UNC prefixes are handled one level up by package textpath.
//
// Normalisation rules:
//   - Backslash separators are replaced by forward slashes
//   - Empty and "." segments are eliminated
//   - ".." pops the preceding segment when one exists; a ".." that would
//     climb past the first segment is dropped, not kept
//   - No trailing separator survives normalisation
package generic

import "strings"

// StartsWithSeparator reports whether path begins with "/" or "\".
// Under the generic rules this is exactly the absolute-path test.
func StartsWithSeparator(path string) bool {
	return path != "" && (path[0] == '/' || path[0] == '\\')
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// collapse splits path on separators and folds the segments into a
// normalised, separator-free-ended string. The leading separator of an
// absolute path is not preserved here; callers re-add it.
func collapse(path string) string {
	var out []string
	for _, seg := range strings.FieldsFunc(path, isSeparator) {
		switch seg {
		case ".":
			// no-op segment
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			// ".." at the root is dropped; see TestResolveOne_ParentEscapesRoot
		default:
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/")
}

// ResolveOne normalises a single path. The empty path resolves to the
// empty string.
func ResolveOne(path string) string {
	if StartsWithSeparator(path) {
		return "/" + collapse(path)
	}
	return collapse(path)
}

// Resolve resolves path2 against path1.
//
// If path2 starts with a separator it replaces path1 entirely. Otherwise the
// two are joined and normalised together, and the result is absolute exactly
// when path1 was.
func Resolve(path1, path2 string) string {
	if StartsWithSeparator(path2) {
		return ResolveOne(path2)
	}
	r := collapse(path1)
	if path2 != "" {
		r = collapse(r + "/" + path2)
	}
	if StartsWithSeparator(path1) {
		r = "/" + r
	}
	return r
}

// ResolveN folds Resolve left to right over paths, so a later absolute path
// overrides everything before it. No paths resolves to the empty string.
func ResolveN(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	r := ResolveOne(paths[0])
	for _, p := range paths[1:] {
		r = Resolve(r, p)
	}
	return r
}

// Relative computes the shortest ".."/segment sequence leading from one
// absolute path to another. Identical paths yield the empty string.
//
// Relative panics when either argument does not start with a separator;
// calling it with a relative path is a programming error, not a runtime
// condition. Callers validate with StartsWithSeparator first.
func Relative(fromPath, toPath string) string {
	if !StartsWithSeparator(fromPath) || !StartsWithSeparator(toPath) {
		panic("textpath: Relative requires absolute paths")
	}

	from := segments(ResolveOne(fromPath))
	to := segments(ResolveOne(toPath))

	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)

	return strings.TrimSuffix(strings.Join(parts, "/"), "/")
}

// segments splits a resolved absolute path into its segment list.
// "/" has no segments.
func segments(resolved string) []string {
	trimmed := strings.TrimPrefix(resolved, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
