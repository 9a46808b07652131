// File: pathx.go
// Title: POSIX Path Namespace
// Description: String-only path helpers that never touch a filesystem.
//              Backslashes are treated as separators and runs of separators
//              collapse to one. "." and ".." segments are kept verbatim.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package pathx

import (
	"regexp"
	"strings"
)

// Sep is the path separator produced by every function of this package.
const Sep = "/"

var separatorRuns = regexp.MustCompile(`/{2,}`)

// Normalize converts backslashes to slashes and collapses repeated slashes.
func Normalize(p string) string {
	return separatorRuns.ReplaceAllString(strings.ReplaceAll(p, `\`, Sep), Sep)
}

// Join joins the non-empty parts with Sep and normalizes the result.
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return Normalize(strings.Join(kept, Sep))
}

// Basename returns the segment after the last separator. A path ending in
// a separator has an empty basename.
func Basename(p string) string {
	p = Normalize(p)
	if i := strings.LastIndex(p, Sep); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Dirname returns everything before the last separator: "." when there is
// no separator and "/" for entries directly below the root.
func Dirname(p string) string {
	p = Normalize(p)
	i := strings.LastIndex(p, Sep)
	switch {
	case i < 0:
		return "."
	case i == 0:
		return Sep
	}
	return p[:i]
}

// Extname returns the extension of the basename including its dot. Names
// without a dot, or whose only dot is the first character, have none.
func Extname(p string) string {
	base := Basename(p)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[i:]
	}
	return ""
}
