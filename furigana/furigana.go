// Package furigana is the annotation engine facade: it merges manual
// override markup with tokenizer-derived readings into one ordered,
// non-overlapping sequence of replacement spans.
package furigana

import (
	"context"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/veschw/obsidian-autofurigana/model"
	"github.com/veschw/obsidian-autofurigana/override"
	"github.com/veschw/obsidian-autofurigana/resolve"
	"github.com/veschw/obsidian-autofurigana/segment"
)

// japaneseRun matches a maximal run of hiragana, katakana (including
// the prolonged sound mark) and CJK ideographs. Not configurable.
var japaneseRun = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FFF}\x{3400}-\x{4DBF}]+`)

// Options are the per-invocation exclusion inputs. Both are optional;
// absent means no exclusions of that kind.
type Options struct {
	// Selections are regions under active edit that must not be
	// annotated.
	Selections []model.Interval
}

// Engine computes resolved annotation spans for a text. It holds no
// per-invocation state: every call recomputes candidates and
// exclusions from scratch, so identical inputs always produce
// identical output.
type Engine struct {
	builder  *segment.Builder
	notation override.Notation
}

// New returns an Engine reading through tok with the given override
// notation. A nil tok degrades segmentation rather than failing.
func New(tok segment.Tokenizer, notation override.Notation) *Engine {
	return &Engine{builder: segment.NewBuilder(tok), notation: notation}
}

// Annotate runs the full pipeline over a static text: parse manual
// overrides, detect Japanese runs, fold code regions and selections
// into exclusions, and resolve. The returned spans are ordered by
// position and pairwise non-overlapping.
func (e *Engine) Annotate(ctx context.Context, text string, opts Options) []model.ResolvedSpan {
	return e.annotate(ctx, text, model.Interval{From: 0, To: len(text)}, opts)
}

// AnnotateRange is the viewport mode: the same full recompute as
// Annotate, with the output restricted to candidates overlapping the
// visible interval. Fence state is still tracked from the start of the
// text so a code block opened above the viewport keeps excluding
// visible lines. Offsets in the result stay in document coordinates.
func (e *Engine) AnnotateRange(ctx context.Context, text string, visible model.Interval, opts Options) []model.ResolvedSpan {
	return e.annotate(ctx, text, visible, opts)
}

func (e *Engine) annotate(ctx context.Context, text string, visible model.Interval, opts Options) []model.ResolvedSpan {
	if text == "" || visible.From >= visible.To {
		return nil
	}

	var manual []model.Candidate
	for _, c := range override.Parse(e.notation, text) {
		if c.Interval.Overlaps(visible) {
			manual = append(manual, c)
		}
	}

	var auto []model.Candidate
	for _, m := range japaneseRun.FindAllStringIndex(text, -1) {
		iv := model.Interval{From: m[0], To: m[1]}
		if !iv.Overlaps(visible) {
			continue
		}
		auto = append(auto, model.Candidate{
			Interval: iv,
			Segment:  e.builder.Build(ctx, text[iv.From:iv.To]),
			Origin:   model.Automatic,
		})
	}

	zones := resolve.CodeZones(text)
	zones = append(zones, opts.Selections...)

	spans := resolve.Resolve(manual, auto, zones)
	logrus.WithFields(logrus.Fields{
		"manual": len(manual),
		"auto":   len(auto),
		"zones":  len(zones),
		"spans":  len(spans),
	}).Debug("annotation pass resolved")
	return spans
}
