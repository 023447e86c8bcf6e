// Directive expansion: finds rambutan(...) / rambutanband(...) tokens in the
// content source and replaces them through a plain name->handler map.

package core

import (
	"regexp"
	"strings"
)

// DirectiveHandler renders one directive given its first argument and the
// resolved active flag.
type DirectiveHandler func(arg string, active bool) string

// Directives is the registry, resolved once at startup. A plain map is all
// the dispatch we need; handlers are pure functions from this package.
// Note the keys must stay in sync with the regexp below.
func Directives() map[string]DirectiveHandler {
	return map[string]DirectiveHandler{
		"rambutan":     FormatName,
		"rambutanband": FormatBand,
	}
}

// directiveRe matches rambutan(args) and rambutanband(args). The longer name
// comes first in the alternation so "rambutanband(" is never half-matched as
// "rambutan" + leftover text.
var directiveRe = regexp.MustCompile(`\b(rambutanband|rambutan)\(([^)]*)\)`)

// HasDirectives reports whether the content contains any directive at all.
// The render service uses this to skip resolving the viewer's toggle (and to
// keep cache keys on the default partition) for directive-free pages.
func HasDirectives(content string) bool {
	return directiveRe.MatchString(content)
}

// Expand replaces every directive in content using the registry. The active
// flag comes from a RenderFlag so it is only resolved when the first
// directive is actually hit, and then reused for the rest of the render.
//
// Directives take one positional argument; anything after the first comma is
// ignored. Unknown names never match the regexp, so there is no error path.
func Expand(content string, directives map[string]DirectiveHandler, flag *RenderFlag) string {
	return directiveRe.ReplaceAllStringFunc(content, func(m string) string {
		sub := directiveRe.FindStringSubmatch(m) // [full, name, args]
		h, ok := directives[sub[1]]
		if !ok { // registry out of sync with the regexp; leave the token as-is
			return m
		}
		arg := sub[2]
		if i := strings.Index(arg, ","); i >= 0 { // first positional argument only
			arg = arg[:i]
		}
		return h(arg, flag.Value())
	})
}
