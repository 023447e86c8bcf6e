// Pure string formatting for the rambutan directives. Framework-agnostic on
// purpose: handlers/services pass the resolved active flag in.

package core

import "strings"

// RambutanLink is the fixed cross-reference token: the word "Rambutan"
// hyperlinked to the page named "Rambutan", in wiki link syntax.
const RambutanLink = `[[Rambutan|Rambutan]]`

// FormatName rewrites a person's (or act's) name with the rambutan alias.
// Inactive renders are a verbatim passthrough of the trimmed input, so the
// decoration is purely cosmetic and reversible.
func FormatName(raw string, active bool) string {
	name := strings.TrimSpace(raw) // clean user input first
	if name == "" {                //empty (or whitespace-only) argument -> empty output, not an error
		return ""
	}
	if !active {
		return name // passthrough when the mode is off
	}

	parts := strings.Fields(name) // split on runs of whitespace
	if len(parts) == 2 {
		// Two-word names get the alias spliced between first and last name:
		//   Elton John -> Elton "[[Rambutan|Rambutan]]" John
		return parts[0] + ` "` + RambutanLink + `" ` + parts[1]
	}
	// One word, or three and more: append the stage-name suffix instead.
	return name + ` (also known by the stage name "` + RambutanLink + `")`
}

// FormatBand rewrites a band name. Same trim/empty/inactive handling as
// FormatName but no word-count branching, just the fixed suffix.
func FormatBand(raw string, active bool) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	if !active {
		return name
	}
	return name + ` (formerly known as ` + RambutanLink + `)`
}
