package segment

import (
	"github.com/veschw/obsidian-autofurigana/kanji"
)

// Affix is a run of kana peeled off one end of a token's surface form,
// paired with the slice of the reading it accounts for.
type Affix struct {
	Base    string
	Reading string
}

// Split partitions one token's surface form into leading kana, a kanji
// core, and trailing kana (okurigana), with the reading divided
// accordingly.
type Split struct {
	Base        string
	BaseReading string
	Prefix      Affix
	Suffix      Affix
}

// SplitOkurigana walks kana inward from both ends of surface, consuming
// the matching kana off the corresponding end of readingHira. Whatever
// remains in the middle is the kanji core and its reading.
//
// The match is purely positional: kana inside the reading that happens
// to coincide with okurigana at a core boundary can shift the split.
// That mis-alignment is rare and accepted; callers get a consistent,
// deterministic partition either way.
//
// Callers are expected to have filtered out surfaces with no kanji;
// those pass through upstream as plain kana chunks.
func SplitOkurigana(surface, readingHira string) Split {
	sr := []rune(surface)
	rr := []rune(readingHira)

	start, rStart := 0, 0
	for start < len(sr) && kanji.IsKana(sr[start]) {
		k := []rune(kanji.KatakanaToHiragana(string(sr[start])))[0]
		if rStart < len(rr) && rr[rStart] == k {
			start++
			rStart++
			continue
		}
		break
	}

	end, rEnd := len(sr), len(rr)
	for end > start && kanji.IsKana(sr[end-1]) {
		k := []rune(kanji.KatakanaToHiragana(string(sr[end-1])))[0]
		if rEnd > rStart && rr[rEnd-1] == k {
			end--
			rEnd--
			continue
		}
		break
	}

	return Split{
		Base:        string(sr[start:end]),
		BaseReading: string(rr[rStart:rEnd]),
		Prefix:      Affix{Base: string(sr[:start]), Reading: string(rr[:rStart])},
		Suffix:      Affix{Base: string(sr[end:]), Reading: string(rr[rEnd:])},
	}
}
