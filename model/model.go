package model

// Token is a single morpheme produced by the tokenizer.
// An empty or "*" Reading means the tokenizer supplied no reading;
// consumers fall back to the surface form.
type Token struct {
	Surface string `json:"surface"`
	Reading string `json:"reading,omitempty"`
}

// NoReading is the tokenizer's placeholder feature value for tokens
// without a dictionary reading (punctuation, symbols, unknown words).
const NoReading = "*"

// HasReading reports whether the tokenizer supplied a usable reading.
func (t Token) HasReading() bool {
	return t.Reading != "" && t.Reading != NoReading
}

// AlignedSegment carries base text chunks and their readings as two
// index-aligned slices. BaseChunks[i] is annotated by ReadingChunks[i];
// an empty reading chunk means "render as plain text". The two slices
// are always the same length.
type AlignedSegment struct {
	BaseChunks    []string `json:"base_chunks"`
	ReadingChunks []string `json:"reading_chunks"`
}

// Append adds one base/reading pair, keeping the slices aligned.
func (s *AlignedSegment) Append(base, reading string) {
	s.BaseChunks = append(s.BaseChunks, base)
	s.ReadingChunks = append(s.ReadingChunks, reading)
}

// Extend appends all pairs of other onto s in order.
func (s *AlignedSegment) Extend(other AlignedSegment) {
	s.BaseChunks = append(s.BaseChunks, other.BaseChunks...)
	s.ReadingChunks = append(s.ReadingChunks, other.ReadingChunks...)
}

// Len returns the number of aligned pairs.
func (s AlignedSegment) Len() int {
	return len(s.BaseChunks)
}

// Interval is a half-open [From, To) range of byte offsets into the
// source text. From < To for every valid interval.
type Interval struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Overlaps reports whether two half-open intervals share any offset.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.From < other.To && other.From < iv.To
}

// Origin distinguishes user-authored override candidates from spans the
// engine detected automatically.
type Origin int

const (
	Manual Origin = iota
	Automatic
)

func (o Origin) String() string {
	switch o {
	case Manual:
		return "manual"
	case Automatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// Candidate is a replacement interval proposed to the resolver.
type Candidate struct {
	Interval Interval       `json:"interval"`
	Segment  AlignedSegment `json:"segment"`
	Origin   Origin         `json:"origin"`
}

// ResolvedSpan is one member of the final ordered output sequence:
// a source interval plus the aligned chunks to render in its place.
type ResolvedSpan struct {
	Interval Interval       `json:"interval"`
	Segment  AlignedSegment `json:"segment"`
}
