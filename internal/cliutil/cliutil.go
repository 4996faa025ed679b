// internal/cliutil/cliutil.go
package cliutil

import "flag"

// Explicit returns the names of flags that were set on the command line.
// Call after fs.Parse.
func Explicit(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}

// AnySet reports whether any of names (a flag and its aliases) was set.
func AnySet(set map[string]bool, names ...string) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}
