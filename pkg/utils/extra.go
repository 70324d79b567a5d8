package utils

import (
	"os"
	"strings"
)

// EnsureDir creates dir (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// EscapeLike escapes LIKE wildcards in s. Use with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// NormalizeName trims and lowercases a user supplied name used as a lookup key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
