package pretty

import (
	"io"
	"iter"
)

// WriteIter renders items from an iterator and writes each to w as it
// arrives, followed by a newline. Iteration stops at the first failed write.
func WriteIter[T Printer](w io.Writer, s Style, seq iter.Seq[T]) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var streamErr error
	seq(func(item T) bool {
		if err := writeItem(w, s, item); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T Printer](w io.Writer, s Style, ch <-chan T) error {
	return WriteIter(w, s, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
