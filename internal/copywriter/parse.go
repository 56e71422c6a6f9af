package copywriter

import (
	"sort"
	"strings"
)

// discourseMarkers start a new paragraph when they open a line. They are
// the transition words the copy tone guide asks the model to use.
var discourseMarkers = []string{"또한", "특히", "그리고", "무엇보다"}

// ParseTagged extracts each recognized tag's body from the model's single
// text blob. A body runs greedily from its tag to the next recognized tag
// or end of string. Unrecognized text before the first tag is dropped, and
// only a tag's first occurrence counts.
func ParseTagged(body string) Patch {
	type hit struct {
		tag Tag
		pos int
	}
	var hits []hit
	for _, tag := range TagOrder {
		if idx := strings.Index(body, string(tag)); idx >= 0 {
			hits = append(hits, hit{tag: tag, pos: idx})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	patch := Patch{}
	for i, h := range hits {
		start := h.pos + len(string(h.tag))
		end := len(body)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		patch[h.tag] = Reformat(body[start:end])
	}
	return patch
}

// Reformat applies the light post-processing the preview expects: one
// sentence per line, plus a paragraph break before Korean discourse
// markers.
func Reformat(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	for _, punct := range []string{". ", "! ", "? "} {
		text = strings.ReplaceAll(text, punct, punct[:1]+"\n")
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(out) > 0 && startsWithMarker(line) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func startsWithMarker(line string) bool {
	for _, m := range discourseMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}
