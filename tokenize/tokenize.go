// Package tokenize wraps the kagome morphological tokenizer behind a
// lazily built, process-wide shared provider.
package tokenize

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/veschw/obsidian-autofurigana/model"
)

// Dictionary names the kagome system dictionary to load.
type Dictionary string

const (
	DictIPA Dictionary = "ipa"
	DictUni Dictionary = "uni"
)

// DictionaryFromString maps a configuration value onto a Dictionary,
// defaulting unknown values to IPA.
func DictionaryFromString(s string) Dictionary {
	if Dictionary(s) == DictUni {
		return DictUni
	}
	return DictIPA
}

// Provider owns the single lazily built tokenizer reference. The first
// Build constructs it; concurrent requesters share that one in-flight
// build and wait, bounded by their context deadline. Once built, the
// reference is immutable and read without locking.
type Provider struct {
	dict  Dictionary
	group singleflight.Group
	ref   atomic.Pointer[tokenizer.Tokenizer]
}

// NewProvider returns an unbuilt Provider for the given dictionary.
func NewProvider(dict Dictionary) *Provider {
	return &Provider{dict: dict}
}

// Ready reports whether the tokenizer has been built.
func (p *Provider) Ready() bool {
	return p != nil && p.ref.Load() != nil
}

// Build returns the shared tokenizer, constructing it on first use.
// Loading the system dictionary takes noticeable time, so callers
// arriving during a build wait on the same flight instead of starting
// another; ctx bounds the wait.
func (p *Provider) Build(ctx context.Context) (*tokenizer.Tokenizer, error) {
	if t := p.ref.Load(); t != nil {
		return t, nil
	}
	ch := p.group.DoChan("build", func() (interface{}, error) {
		start := time.Now()
		t, err := newTokenizer(p.dict)
		if err != nil {
			logrus.WithError(err).Error("tokenizer build failed")
			return nil, err
		}
		p.ref.Store(t)
		logrus.WithFields(logrus.Fields{
			"dict":    string(p.dict),
			"elapsed": time.Since(start),
		}).Info("tokenizer built")
		return t, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*tokenizer.Tokenizer), nil
	}
}

func newTokenizer(d Dictionary) (*tokenizer.Tokenizer, error) {
	switch d {
	case DictUni:
		return tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	default:
		return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	}
}

// Tokenize produces the ordered token sequence for text, building the
// tokenizer first if needed. An empty input yields no tokens and no
// error.
func (p *Provider) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if text == "" {
		return nil, nil
	}
	t := p.ref.Load()
	if t == nil {
		var err error
		if t, err = p.Build(ctx); err != nil {
			return nil, err
		}
	}
	return convertKagomeTokens(t.Tokenize(text)), nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []model.Token {
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		out = append(out, model.Token{Surface: kt.Surface, Reading: reading})
	}
	return out
}
