package npm

import (
	"regexp"
	"strings"
)

// ListEntry is one (name, version) row extracted from `npm list` output.
type ListEntry struct {
	Name    string
	Version string
}

// treePrefixRe strips npm's tree-drawing prefixes, both the Unicode and the
// legacy ASCII variants.
var treePrefixRe = regexp.MustCompile("^[\\s│├└─┬`+|\\\\-]+")

// entryRe matches `<name>@<version>` at the start of a cleaned line, where
// name may be scoped (@scope/pkg) and version starts with a digit. Anything
// after the version (deduped, extraneous, paths) is a trailing annotation
// and ignored.
var entryRe = regexp.MustCompile(`^((?:@[^@/\s]+/)?[^@\s]+)@(\d\S*)`)

// ParseListOutput extracts (name, version) pairs from the captured output of
// the list command, one candidate per line, deduplicated by (name, version)
// and kept in encounter order. Lines that do not match the pattern are
// skipped; this is plain line matching, not a grammar.
func ParseListOutput(output string) []ListEntry {
	var entries []ListEntry
	seen := make(map[ListEntry]bool)

	for _, line := range strings.Split(output, "\n") {
		cleaned := treePrefixRe.ReplaceAllString(line, "")
		match := entryRe.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		entry := ListEntry{Name: match[1], Version: match[2]}
		if seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}
	return entries
}
