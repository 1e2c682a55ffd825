package ast

// Span is a source range: the line it starts on plus start/end byte
// offsets into the source. Spans only feed diagnostics; they never
// affect evaluation.
type Span struct {
	Line  int
	Start int
	End   int
}

// ZeroSpan tags synthetic nodes such as the end-of-input token.
var ZeroSpan = Span{}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	line := s.Line
	if other.Line < line {
		line = other.Line
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Line: line, Start: start, End: end}
}

type HasSpan interface {
	GetSpan() Span
}
