// Package strings holds the few string helpers wiring code shares
package strings

import std "strings"

// IfEmpty falls back to def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix cleans a mount prefix to one leading slash and no trailing one
// the bare root is rejected since a module always owns a segment
func MustPrefix(s string) string {
	p := "/" + std.Trim(s, " /")
	if p == "/" {
		panic("mount prefix is required")
	}
	return p
}
