package form

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorSet maps a field path to a human-readable message. Paths follow the
// bound form names, with list entries addressed by position, e.g.
// "techs[2].knowledge". List-level rules attach to the list path itself.
type ErrorSet map[string]string

// Add records a message for a path. The first message per path wins so a
// structural failure is not overwritten by a follow-up refinement.
func (e ErrorSet) Add(path, msg string) {
	if _, ok := e[path]; !ok {
		e[path] = msg
	}
}

// Has reports whether a message is recorded for the path.
func (e ErrorSet) Has(path string) bool {
	_, ok := e[path]
	return ok
}

// Error renders the set as one line per field, ordered by path.
func (e ErrorSet) Error() string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	var b strings.Builder
	for i, p := range paths {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", p, e[p])
	}
	return b.String()
}

// TechPath builds the path of one entry field, e.g. TechPath(0, "title").
func TechPath(i int, field string) string {
	return fmt.Sprintf("techs[%d].%s", i, field)
}
