package textpath_test

import (
	"testing"

	"github.com/jpl-au/pathcalc/textpath"
	"github.com/stretchr/testify/assert"
)

func TestPath_Construction(t *testing.T) {
	// Constructors resolve their input; the stored string is never raw.
	assert.Equal(t, "a/b", textpath.NewGeneric("a//b/").String())
	assert.Equal(t, "a", textpath.NewGeneric("a/b/..").String())
	assert.Equal(t, "C:/b", textpath.New("C:/a/../b", textpath.Windows).String())

	assert.Equal(t, "a/b/c/d/e", textpath.FromGeneric("a/b", "c/d", "e/f", "..").String())
	assert.Equal(t, "", textpath.FromGeneric().String())

	assert.Equal(t, textpath.Native, textpath.NewNative("x").Variant())
	assert.Equal(t, textpath.Native, textpath.FromNative("x", "y").Variant())
}

func TestPath_Resolve(t *testing.T) {
	p := textpath.NewGeneric("a/b")

	assert.Equal(t, "a", p.Resolve("..").String())
	assert.Equal(t, "a/b/c/d", p.ResolveN("c", "d").String())
	assert.Equal(t, "a", p.ResolveN("..").String())
	assert.Equal(t, "/x", p.Resolve("/x").String())
	assert.Equal(t, "/x/y", p.ResolveN("/x", "y").String())

	// The receiver is a value; no operation mutates it.
	assert.Equal(t, "a/b", p.String())
}

func TestPath_Relative(t *testing.T) {
	assert.Equal(t, "c", textpath.NewGeneric("/a/b").Relative("/a/b/c"))
	assert.Equal(t, "../../c/d", textpath.NewGeneric("/a/b").Relative("/c/d"))
	assert.Equal(t, "", textpath.New("C:/", textpath.Windows).Relative("C:/"))
}

func TestPath_Extensions(t *testing.T) {
	p := textpath.NewGeneric("foo/qux.html")

	assert.Equal(t, "foo/qux.css", p.ChangeExtension("css").String())
	assert.Equal(t, "foo/qux.css", p.ChangeLastExtension(".css").String())
	assert.True(t, p.HasExtension("html"))
	assert.True(t, p.HasExtensions(".css", ".html"))
	assert.False(t, p.HasExtension("css"))
	assert.Equal(t, "qux.html", p.BaseName())
	assert.Equal(t, "qux", p.BaseNameWithoutExt(".html"))
}

func TestPath_Equality(t *testing.T) {
	// Equality is the normalised string plus the variant, nothing else.
	assert.Equal(t, textpath.NewGeneric("a//b"), textpath.NewGeneric("a/b/"))
	assert.NotEqual(t, textpath.NewGeneric("a/b"), textpath.NewGeneric("a/c"))
	assert.NotEqual(t, textpath.New("/a", textpath.Generic), textpath.New("/a", textpath.Windows))

	// Comparable: usable as a map key.
	seen := map[textpath.Path]bool{textpath.NewGeneric("a/b"): true}
	assert.True(t, seen[textpath.NewGeneric("a//b/")])
}

func TestPath_IsAbsolute(t *testing.T) {
	assert.True(t, textpath.NewGeneric("/a").IsAbsolute())
	assert.False(t, textpath.NewGeneric("a").IsAbsolute())
	assert.True(t, textpath.New("C:/a", textpath.Windows).IsAbsolute())
	assert.False(t, textpath.New("C:/a", textpath.Generic).IsAbsolute())
}
