package util

import "strings"

// ExtractTags pulls #hashtags out of free text, without the marker and
// deduplicated in first-seen order.
func ExtractTags(rawContent string) []string {
	var tags []string
	seen := make(map[string]struct{})

	for _, field := range strings.Fields(rawContent) {
		if !strings.HasPrefix(field, "#") || len(field) < 2 {
			continue
		}
		tag := strings.TrimPrefix(field, "#")
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
