//go:build !windows

package textpath

// Native is the variant matching the build's target platform.
const Native = Generic
