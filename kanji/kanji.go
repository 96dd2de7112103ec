package kanji

// IsKanji reports whether r is a CJK ideograph (unified block or
// extension A).
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

// IsKana reports whether r is Hiragana or Katakana. The katakana block
// includes the prolonged sound mark U+30FC.
func IsKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

// ContainsKanji reports whether s has at least one kanji rune.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// KatakanaToHiragana converts katakana runes to their hiragana
// counterparts, leaving everything else (including the prolonged sound
// mark) untouched.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// NormalizeReading converts a tokenizer-supplied reading into canonical
// hiragana. Tokenizers emit "*" (or nothing) for tokens without a
// dictionary reading; in that case the surface form stands in as its
// own reading.
func NormalizeReading(raw, fallback string) string {
	if raw == "" || raw == "*" {
		return KatakanaToHiragana(fallback)
	}
	return KatakanaToHiragana(raw)
}
