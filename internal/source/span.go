package source

import (
	"fmt"
)

// Span is a byte-offset range into a single source file. The file ID is
// bookkeeping local to a FileSet and stays out of serialized output.
type Span struct {
	File  FileID `json:"-"`
	Start uint32 `json:"start"` // inclusive, in bytes
	End   uint32 `json:"end"`   // exclusive, in bytes
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
