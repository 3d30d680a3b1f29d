package gateway

import (
	"fmt"
	"strings"
)

// PostOriginMarker must appear in every submitted URL. Matching is a plain
// substring check, the same lenient rule applied to pasted share links.
const PostOriginMarker = "reddit.com"

// ParseURLList splits raw newline-separated input into the URL batch. Blank
// lines are ignored. Any surviving line without the origin marker rejects
// the whole batch, as does input with no URLs at all.
func ParseURLList(raw string) ([]string, error) {
	var urls []string
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.Contains(line, PostOriginMarker) {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("line %d is not a %s URL: %s", i+1, PostOriginMarker, line),
			}
		}
		urls = append(urls, line)
	}
	if len(urls) == 0 {
		return nil, &ValidationError{Reason: "no post URLs provided"}
	}
	return urls, nil
}
