/*
Package session defines the derived session target for a bookmarked
directory and the deterministic session-name derivation.
*/
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"
)

// Target pairs a canonical directory path with the multiplexer session name
// derived from it. Targets are computed at go time and never persisted.
type Target struct {
	Path string
	Name string
}

// unsafeChars matches characters tmux rejects or misparses in session names
// (dots and colons are target separators, whitespace breaks -t arguments).
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// digestLen is the number of hex digits of the path digest appended to the
// session name to keep same-basename directories apart.
const digestLen = 8

/*
NameFor derives the session name for a canonical directory path. The name is
a deterministic function of the path: the sanitized directory basename plus a
short SHA-256 digest of the full path, with prefix prepended. Repeated calls
for the same path always produce the same name, so a go on an already-running
session reattaches instead of spawning a duplicate.
*/
func NameFor(prefix, path string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(path), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "session"
	}
	sum := sha256.Sum256([]byte(path))
	return prefix + base + "-" + hex.EncodeToString(sum[:])[:digestLen]
}

// TargetFor builds the Target for a canonical directory path.
func TargetFor(prefix, path string) Target {
	return Target{Path: path, Name: NameFor(prefix, path)}
}
