package furigana

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veschw/obsidian-autofurigana/model"
	"github.com/veschw/obsidian-autofurigana/override"
)

// stubTokenizer maps exact input strings to token sequences, falling
// back to a single readingless token like a degraded real tokenizer.
type stubTokenizer struct {
	tokens map[string][]model.Token
}

func (s stubTokenizer) Tokenize(_ context.Context, text string) ([]model.Token, error) {
	if toks, ok := s.tokens[text]; ok {
		return toks, nil
	}
	return []model.Token{{Surface: text}}, nil
}

func newTestEngine(n override.Notation) *Engine {
	return New(stubTokenizer{tokens: map[string][]model.Token{
		"お願いします": {
			{Surface: "お願い", Reading: "オネガイ"},
			{Surface: "し", Reading: "シ"},
			{Surface: "ます", Reading: "マス"},
		},
		"これは": {
			{Surface: "これ", Reading: "コレ"},
			{Surface: "は", Reading: "ハ"},
		},
		"です": {
			{Surface: "です", Reading: "デス"},
		},
		"漢字": {
			{Surface: "漢字", Reading: "カンジ"},
		},
	}}, n)
}

func TestAnnotatePlainJapaneseRun(t *testing.T) {
	e := newTestEngine(override.Curly)
	spans := e.Annotate(context.Background(), "お願いします", Options{})

	require.Len(t, spans, 1)
	sp := spans[0]
	assert.Equal(t, model.Interval{From: 0, To: len("お願いします")}, sp.Interval)
	assert.Equal(t, []string{"お", "願", "い", "し", "ます"}, sp.Segment.BaseChunks)
	assert.Equal(t, "ねが", sp.Segment.ReadingChunks[1], "kanji core carries its reading")
}

func TestAnnotateMixedManualAndAutomatic(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "これは{漢字|かん|じ}です"
	spans := e.Annotate(context.Background(), text, Options{})

	require.Len(t, spans, 3)

	assert.Equal(t, "これは", text[spans[0].Interval.From:spans[0].Interval.To])
	assert.Equal(t, []string{"これ", "は"}, spans[0].Segment.BaseChunks)

	assert.Equal(t, "{漢字|かん|じ}", text[spans[1].Interval.From:spans[1].Interval.To])
	assert.Equal(t, []string{"漢", "字"}, spans[1].Segment.BaseChunks)
	assert.Equal(t, []string{"かん", "じ"}, spans[1].Segment.ReadingChunks)

	assert.Equal(t, "です", text[spans[2].Interval.From:spans[2].Interval.To])

	for i := 1; i < len(spans); i++ {
		assert.False(t, spans[i-1].Interval.Overlaps(spans[i].Interval))
	}
}

func TestAnnotateIsIdempotent(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "これは{漢字|かん|じ}です\n`code`お願いします"
	opts := Options{Selections: []model.Interval{{From: 0, To: 3}}}

	first := e.Annotate(context.Background(), text, opts)
	second := e.Annotate(context.Background(), text, opts)
	assert.Equal(t, first, second)
}

func TestAnnotateSelectionExcludes(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "お願いします"
	spans := e.Annotate(context.Background(), text, Options{
		Selections: []model.Interval{{From: 0, To: len(text)}},
	})
	assert.Empty(t, spans)
}

func TestAnnotateSkipsCodeRegions(t *testing.T) {
	e := newTestEngine(override.Curly)

	t.Run("inline code", func(t *testing.T) {
		text := "お願いします `漢字` です"
		spans := e.Annotate(context.Background(), text, Options{})
		for _, sp := range spans {
			assert.NotContains(t, text[sp.Interval.From:sp.Interval.To], "`")
		}
		require.NotEmpty(t, spans)
		assert.Equal(t, "お願いします", text[spans[0].Interval.From:spans[0].Interval.To])
	})

	t.Run("fenced block", func(t *testing.T) {
		text := "お願いします\n```\n漢字\n```\nです"
		spans := e.Annotate(context.Background(), text, Options{})
		require.Len(t, spans, 2)
		assert.Equal(t, "お願いします", text[spans[0].Interval.From:spans[0].Interval.To])
		assert.Equal(t, "です", text[spans[1].Interval.From:spans[1].Interval.To])
	})
}

func TestAnnotateNotationNone(t *testing.T) {
	e := newTestEngine(override.None)
	text := "これは{漢字|かん|じ}です"
	spans := e.Annotate(context.Background(), text, Options{})

	// Without override parsing the brace content is just more
	// Japanese runs.
	var covered []string
	for _, sp := range spans {
		covered = append(covered, text[sp.Interval.From:sp.Interval.To])
	}
	assert.Contains(t, covered, "漢字")
	assert.NotContains(t, strings.Join(covered, ""), "{")
}

func TestAnnotateRangeRestrictsToViewport(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "お願いします\nこれは\nです"

	visible := model.Interval{From: strings.Index(text, "これは"), To: strings.Index(text, "これは") + len("これは")}
	spans := e.AnnotateRange(context.Background(), text, visible, Options{})

	require.Len(t, spans, 1)
	assert.Equal(t, "これは", text[spans[0].Interval.From:spans[0].Interval.To])
}

func TestAnnotateRangeFenceStateTrackedFromStart(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "```\n漢字\nです\n"

	from := strings.Index(text, "です")
	spans := e.AnnotateRange(context.Background(), text, model.Interval{From: from, To: from + len("です")}, Options{})
	assert.Empty(t, spans, "unterminated fence above the viewport still excludes it")
}

func TestAnnotateEmptyAndInvalidRanges(t *testing.T) {
	e := newTestEngine(override.Curly)
	assert.Empty(t, e.Annotate(context.Background(), "", Options{}))
	assert.Empty(t, e.AnnotateRange(context.Background(), "お願いします", model.Interval{From: 3, To: 3}, Options{}))
}

func TestAnnotateAllSpansAligned(t *testing.T) {
	e := newTestEngine(override.Curly)
	text := "これは{三文字|さん|もじ}です"
	for _, sp := range e.Annotate(context.Background(), text, Options{}) {
		assert.Equal(t, len(sp.Segment.BaseChunks), len(sp.Segment.ReadingChunks))
		assert.GreaterOrEqual(t, sp.Segment.Len(), 1)
	}
}
