// ext.go provides extension and base-name string helpers.
//
// These operate on the text after the last separator only and never consult
// the variant: extensions behave the same on every platform. Every function
// accepts its extension arguments with or without the leading dot.

package textpath

import (
	"regexp"
	"strings"
)

var (
	// extensionRun matches the entire trailing run of ".ext" groups,
	// so "a.x.y" matches ".x.y".
	extensionRun = regexp.MustCompile(`(\.[^.]+)+$`)

	// lastExtension matches only the final ".ext" group.
	lastExtension = regexp.MustCompile(`\.[^.]+$`)
)

// dotted prepends the "." to an extension argument when it is missing.
func dotted(extension string) string {
	if strings.HasPrefix(extension, ".") {
		return extension
	}
	return "." + extension
}

// ChangeExtension replaces the whole trailing extension run of path, so
// changing "a.x.y" to ".z" yields "a.z". A path without an extension gets
// the new one appended. The extension argument may contain multiple dots.
func ChangeExtension(path, extension string) string {
	extension = dotted(extension)
	if !extensionRun.MatchString(path) {
		return path + extension
	}
	return extensionRun.ReplaceAllString(path, extension)
}

// ChangeLastExtension replaces only the final ".ext" group of path, so
// changing "a.x.y" to ".z" yields "a.x.z". A path without an extension gets
// the new one appended.
//
// ChangeLastExtension panics when the extension argument itself contains
// more than one dot; use ChangeExtension for multi-part extensions.
func ChangeLastExtension(path, extension string) string {
	extension = dotted(extension)
	if strings.Contains(extension[1:], ".") {
		panic("textpath: ChangeLastExtension takes a single extension, got " + extension)
	}
	if !lastExtension.MatchString(path) {
		return path + extension
	}
	return lastExtension.ReplaceAllString(path, extension)
}

// HasExtension reports whether path ends with the given extension.
func HasExtension(path, extension string) bool {
	return strings.HasSuffix(path, dotted(extension))
}

// HasExtensions reports whether path ends with any of the given extensions.
func HasExtensions(path string, extensions ...string) bool {
	for _, ext := range extensions {
		if HasExtension(path, ext) {
			return true
		}
	}
	return false
}

// BaseName returns the final "/"-delimited segment of path, or the empty
// string for an empty path.
func BaseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// BaseNameWithoutExt returns the base name of path with its trailing
// extension run removed when that run equals any of the given extensions.
// A run matching none of them is kept:
//
//	BaseNameWithoutExt("foo/qux.html", "html")   // "qux"
//	BaseNameWithoutExt("foo/qux.tar.gz", ".gz")  // "qux.tar.gz" (run is ".tar.gz")
func BaseNameWithoutExt(path string, extensions ...string) string {
	dottedExts := make([]string, len(extensions))
	for i, ext := range extensions {
		dottedExts[i] = dotted(ext)
	}
	return extensionRun.ReplaceAllStringFunc(BaseName(path), func(run string) string {
		for _, ext := range dottedExts {
			if run == ext {
				return ""
			}
		}
		return run
	})
}
