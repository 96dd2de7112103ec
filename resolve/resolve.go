// Package resolve arbitrates candidate annotation intervals into the
// final ordered, non-overlapping output sequence.
package resolve

import (
	"sort"

	"github.com/veschw/obsidian-autofurigana/model"
)

// Resolve applies the precedence rules to the candidate sets:
//
//  1. a candidate overlapping any exclusion zone is dropped, whatever
//     its origin;
//  2. an automatic candidate overlapping a surviving manual candidate
//     is dropped;
//  3. survivors are ordered by ascending From, ties by ascending To.
//
// The result is non-overlapping by construction: manual candidates come
// from non-overlapping textual matches, automatic candidates from
// non-overlapping runs over the same text, and cross-origin overlaps
// were removed in step 2. Resolve never mutates its inputs.
func Resolve(manual, auto []model.Candidate, zones []model.Interval) []model.ResolvedSpan {
	keptManual := make([]model.Candidate, 0, len(manual))
	for _, c := range manual {
		if !overlapsAny(c.Interval, zones) {
			keptManual = append(keptManual, c)
		}
	}

	surviving := make([]model.Candidate, 0, len(keptManual)+len(auto))
	surviving = append(surviving, keptManual...)
	for _, c := range auto {
		if overlapsAny(c.Interval, zones) {
			continue
		}
		blocked := false
		for _, m := range keptManual {
			if c.Interval.Overlaps(m.Interval) {
				blocked = true
				break
			}
		}
		if !blocked {
			surviving = append(surviving, c)
		}
	}

	sort.Slice(surviving, func(i, j int) bool {
		a, b := surviving[i].Interval, surviving[j].Interval
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	out := make([]model.ResolvedSpan, 0, len(surviving))
	for _, c := range surviving {
		out = append(out, model.ResolvedSpan{Interval: c.Interval, Segment: c.Segment})
	}
	return out
}

func overlapsAny(iv model.Interval, zones []model.Interval) bool {
	for _, z := range zones {
		if iv.Overlaps(z) {
			return true
		}
	}
	return false
}
