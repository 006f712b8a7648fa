package gitrepo

import (
	"regexp"
	"strings"
)

// trailerPattern matches a "Token: value" metadata line such as
// Signed-off-by or Reviewed-by. Token matching is case-insensitive and
// tolerates hyphens.
var trailerPattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9-]*:[ \t]`)

// StripTrailers truncates msg at its first trailer-shaped line and trims
// surrounding whitespace. The trailer line and everything after it go;
// a message consisting only of trailers comes back empty.
func StripTrailers(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if trailerPattern.MatchString(line) {
			lines = lines[:i]
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
