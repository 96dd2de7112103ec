package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/veschw/obsidian-autofurigana/config"
	"github.com/veschw/obsidian-autofurigana/furigana"
	"github.com/veschw/obsidian-autofurigana/ingest"
	"github.com/veschw/obsidian-autofurigana/kanji"
	"github.com/veschw/obsidian-autofurigana/logger"
	"github.com/veschw/obsidian-autofurigana/model"
	"github.com/veschw/obsidian-autofurigana/override"
	"github.com/veschw/obsidian-autofurigana/tokenize"
)

const sampleText = "これは{漢字|かん|じ}です。お願いします。"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	text := sampleText
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	doc, err := ingest.NewDocument(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ingest error:", err)
		os.Exit(1)
	}

	provider := tokenize.NewProvider(tokenize.DictionaryFromString(cfg.Dictionary))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.BuildTimeout)
	defer cancel()
	if _, err := provider.Build(ctx); err != nil {
		// Degraded mode: the engine still produces surface-only spans.
		logrus.WithError(err).Warn("tokenizer unavailable, annotating without readings")
	}

	engine := furigana.New(provider, override.NotationFromString(cfg.Notation))
	spans := engine.Annotate(context.Background(), doc.Text, furigana.Options{})

	fmt.Println(renderBrackets(doc.Text, spans))

	if err := logger.LogJSON(cfg.LogDir, doc.ID+"_spans", spans); err != nil {
		logrus.WithError(err).Warn("failed to write span log")
	}
}

// renderBrackets is a debug consumer of the engine output: spans are
// printed as [base|reading] pairs for chunks that contain kanji, plain
// text otherwise, with unannotated text passed through verbatim.
func renderBrackets(text string, spans []model.ResolvedSpan) string {
	var sb strings.Builder
	pos := 0
	for _, sp := range spans {
		sb.WriteString(text[pos:sp.Interval.From])
		for i, base := range sp.Segment.BaseChunks {
			if kanji.ContainsKanji(base) {
				sb.WriteString("[" + base + "|" + sp.Segment.ReadingChunks[i] + "]")
			} else {
				sb.WriteString(base)
			}
		}
		pos = sp.Interval.To
	}
	sb.WriteString(text[pos:])
	return sb.String()
}
