package resolve

import (
	"regexp"
	"strings"

	"github.com/veschw/obsidian-autofurigana/model"
)

const fenceMarker = "```"

var inlineCode = regexp.MustCompile("`[^`\n]+`")

// CodeZones computes the exclusion intervals for code regions in text:
// inline backtick spans on a single line, and every line of a fenced
// block. The fence flag starts closed on every call and flips each time
// a line's trimmed content begins with the fence marker; an
// unterminated fence runs to the end of the text. Offsets are byte
// offsets into text.
func CodeZones(text string) []model.Interval {
	var zones []model.Interval
	inFence := false
	fenceFrom := 0

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		lineFrom := offset
		offset += len(line)

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fenceMarker) {
			if inFence {
				zones = append(zones, model.Interval{From: fenceFrom, To: offset})
			} else {
				fenceFrom = lineFrom
			}
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		for _, m := range inlineCode.FindAllStringIndex(line, -1) {
			zones = append(zones, model.Interval{From: lineFrom + m[0], To: lineFrom + m[1]})
		}
	}
	if inFence && fenceFrom < len(text) {
		zones = append(zones, model.Interval{From: fenceFrom, To: len(text)})
	}
	return zones
}
