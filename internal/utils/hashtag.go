package utils

import (
	"regexp"
	"sort"
)

// hashtagRe matches a '#' followed by letters, digits or underscores in
// any script, so Persian keywords index the same way Latin ones do.
var hashtagRe = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags returns the distinct hashtag keywords of content,
// without the '#' prefix, in sorted order. A keyword used twice in one
// post still counts once.
func ExtractHashtags(content string) []string {
	matches := hashtagRe.FindAllStringSubmatch(content, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m[1]] = struct{}{}
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}
