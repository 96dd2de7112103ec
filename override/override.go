// Package override recognizes user-authored furigana markup and turns
// each match into an aligned-chunk candidate.
//
// Grammar, per match: OPEN base (PIPE reading)+ CLOSE. The base and
// each reading exclude the bracket pair, the pipe, and line breaks.
// Capture group 1 is the base; group 2 is the whole pipe-delimited
// reading tail including its leading pipe. Any scanner replacing the
// regexes must preserve those group semantics.
package override

import (
	"regexp"
	"strings"

	"github.com/veschw/obsidian-autofurigana/model"
)

// Notation selects the bracket pair used for manual overrides.
type Notation int

const (
	// None disables manual override parsing entirely.
	None Notation = iota
	// Curly matches {base|reading|...}.
	Curly
	// Square matches [base|reading|...].
	Square
)

var (
	curlyPattern  = regexp.MustCompile(`\{([^{}|\n]+)((?:\|[^{}|\n]*)+)\}`)
	squarePattern = regexp.MustCompile(`\[([^\[\]|\n]+)((?:\|[^\[\]|\n]*)+)\]`)
)

// NotationFromString maps a configuration value onto a Notation.
// Unknown values disable matching rather than erroring.
func NotationFromString(s string) Notation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "curly":
		return Curly
	case "square":
		return Square
	default:
		return None
	}
}

func (n Notation) String() string {
	switch n {
	case Curly:
		return "curly"
	case Square:
		return "square"
	default:
		return "none"
	}
}

func (n Notation) pattern() *regexp.Regexp {
	switch n {
	case Curly:
		return curlyPattern
	case Square:
		return squarePattern
	default:
		return nil
	}
}

// Parse scans text for override markup and returns one Manual candidate
// per match, in match order. Each candidate's interval covers the whole
// match including the brackets. Parse holds no state between calls.
func Parse(n Notation, text string) []model.Candidate {
	re := n.pattern()
	if re == nil {
		return nil
	}
	var out []model.Candidate
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		base := text[m[2]:m[3]]
		tail := text[m[4]:m[5]]
		out = append(out, model.Candidate{
			Interval: model.Interval{From: m[0], To: m[1]},
			Segment:  align(base, tail),
			Origin:   model.Manual,
		})
	}
	return out
}

// align distributes the pipe-delimited readings over the base. One
// reading annotates the base whole; several readings split the base
// into single characters, zipped by index. A character count mismatch
// is not an error: excess characters repeat the last supplied reading.
func align(base, tail string) model.AlignedSegment {
	readings := strings.Split(tail, "|")[1:]

	var seg model.AlignedSegment
	if len(readings) == 1 {
		seg.Append(base, readings[0])
		return seg
	}
	for i, ch := range []rune(base) {
		r := readings[len(readings)-1]
		if i < len(readings) {
			r = readings[i]
		}
		seg.Append(string(ch), r)
	}
	return seg
}
