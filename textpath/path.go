// path.go defines the Path value type.
//
// A Path bundles a normalised path string with the variant it was normalised
// under. The stored string is always the ResolveOne output for that variant —
// never a raw input — so two Paths are equal exactly when their normalised
// strings and variants are equal, and Path values compare with ==.
//
// Path is a plain immutable value: every operation returns a new Path and
// never mutates its receiver.

package textpath

// Path is a textual path normalised under a fixed Variant.
//
// The zero value is the empty generic path.
type Path struct {
	path    string
	variant Variant
}

// New constructs a Path under the given variant, resolving the input.
func New(path string, variant Variant) Path {
	return Path{ResolveOne(path, variant), variant}
}

// NewGeneric constructs a generic-variant Path, resolving the input.
func NewGeneric(path string) Path {
	return New(path, Generic)
}

// NewNative constructs a Path under the build target's variant,
// resolving the input.
func NewNative(path string) Path {
	return New(path, Native)
}

// From constructs a Path by resolving paths left to right under the given
// variant.
func From(variant Variant, paths ...string) Path {
	return Path{ResolveN(paths, variant), variant}
}

// FromGeneric constructs a generic-variant Path from multiple paths.
func FromGeneric(paths ...string) Path {
	return From(Generic, paths...)
}

// FromNative constructs a Path from multiple paths under the build
// target's variant.
func FromNative(paths ...string) Path {
	return From(Native, paths...)
}

// Variant returns the variant this Path was normalised under.
func (p Path) Variant() Variant {
	return p.variant
}

// String returns the normalised path string.
func (p Path) String() string {
	return p.path
}

// IsAbsolute reports whether the Path is absolute under its variant.
func (p Path) IsAbsolute() bool {
	return IsAbsolute(p.path, p.variant)
}

// Resolve resolves path2 against this Path.
func (p Path) Resolve(path2 string) Path {
	return Path{Resolve(p.path, path2, p.variant), p.variant}
}

// ResolveN resolves multiple paths against this Path, left to right.
func (p Path) ResolveN(paths ...string) Path {
	r := p.path
	for _, q := range paths {
		r = Resolve(r, q, p.variant)
	}
	return Path{r, p.variant}
}

// Relative computes the relative path from this Path to toPath.
// Panics when either path is not absolute under the variant; see Relative.
func (p Path) Relative(toPath string) string {
	return Relative(p.path, toPath, p.variant)
}

// ChangeExtension returns a Path with its whole trailing extension run
// replaced; see ChangeExtension.
func (p Path) ChangeExtension(extension string) Path {
	return Path{ChangeExtension(p.path, extension), p.variant}
}

// ChangeLastExtension returns a Path with only its final extension
// replaced; see ChangeLastExtension.
func (p Path) ChangeLastExtension(extension string) Path {
	return Path{ChangeLastExtension(p.path, extension), p.variant}
}

// HasExtension reports whether the Path ends with the given extension.
func (p Path) HasExtension(extension string) bool {
	return HasExtension(p.path, extension)
}

// HasExtensions reports whether the Path ends with any of the given
// extensions.
func (p Path) HasExtensions(extensions ...string) bool {
	return HasExtensions(p.path, extensions...)
}

// BaseName returns the final segment of the Path.
func (p Path) BaseName() string {
	return BaseName(p.path)
}

// BaseNameWithoutExt returns the base name with any matching trailing
// extension run removed; see BaseNameWithoutExt.
func (p Path) BaseNameWithoutExt(extensions ...string) string {
	return BaseNameWithoutExt(p.path, extensions...)
}
