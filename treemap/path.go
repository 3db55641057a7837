package treemap

import "strings"

// Paths are split on '/' with no normalization: empty segments (leading,
// trailing or doubled separators) and names like "." or ".." are matched
// byte-literally against child names. The root directory is the implicit
// starting point and is never itself a path segment.

func splitPath(path string) []string {
	return strings.Split(path, "/")
}

// splitStem splits a path into its directory segments and the final
// segment naming the node to create, remove or inspect.
func splitStem(path string) ([]string, string) {
	parts := splitPath(path)
	return parts[:len(parts)-1], parts[len(parts)-1]
}
