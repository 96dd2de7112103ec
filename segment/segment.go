// Package segment turns Japanese text into aligned base/reading chunk
// pairs by driving a morphological tokenizer and splitting each token's
// okurigana away from its kanji core.
package segment

import (
	"context"

	"github.com/veschw/obsidian-autofurigana/kanji"
	"github.com/veschw/obsidian-autofurigana/model"
)

// Tokenizer produces the ordered token sequence for a string. The
// kagome-backed provider in package tokenize satisfies this; tests
// substitute stubs.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Builder assembles one AlignedSegment per input string.
type Builder struct {
	tok Tokenizer
}

// NewBuilder returns a Builder backed by tok. A nil tok degrades every
// build to a single surface-only pair rather than failing.
func NewBuilder(tok Tokenizer) *Builder {
	return &Builder{tok: tok}
}

// Build tokenizes text and concatenates each token's aligned pairs in
// order. Tokens without kanji pass through as a single pair; tokens
// with kanji are split into prefix/core/suffix pairs. Build never
// fails: a missing or erroring tokenizer yields one degraded pair for
// the whole string.
func (b *Builder) Build(ctx context.Context, text string) model.AlignedSegment {
	var toks []model.Token
	if b != nil && b.tok != nil {
		if got, err := b.tok.Tokenize(ctx, text); err == nil {
			toks = got
		}
	}
	if len(toks) == 0 {
		toks = []model.Token{{Surface: text}}
	}

	var seg model.AlignedSegment
	for _, t := range toks {
		if t.Surface == "" {
			continue
		}
		reading := kanji.NormalizeReading(t.Reading, t.Surface)
		if !kanji.ContainsKanji(t.Surface) {
			seg.Append(t.Surface, reading)
			continue
		}
		sp := SplitOkurigana(t.Surface, reading)
		if sp.Prefix.Base != "" {
			seg.Append(sp.Prefix.Base, sp.Prefix.Reading)
		}
		seg.Append(sp.Base, sp.BaseReading)
		if sp.Suffix.Base != "" {
			seg.Append(sp.Suffix.Base, sp.Suffix.Reading)
		}
	}

	// Callers never see an empty segment for non-empty input.
	if seg.Len() == 0 && text != "" {
		seg.Append(text, kanji.NormalizeReading("", text))
	}
	return seg
}
