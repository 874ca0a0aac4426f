package stream

import "strings"

// LineBuffer reassembles newline-delimited lines from text that arrives in
// arbitrary pieces. Incoming chunks are appended to a held-back remainder;
// every completed line is returned in order and the trailing piece after the
// last newline is retained for the next call.
type LineBuffer struct {
	rem string
}

// Feed appends chunk to the buffered remainder and returns all lines
// completed by it, without their newlines. After Feed returns, the buffer
// never contains a newline. A chunk of just "\n" flushes the remainder as
// one (possibly empty) line; a chunk with no newline returns nothing.
func (b *LineBuffer) Feed(chunk string) []string {
	if chunk == "" {
		return nil
	}
	text := b.rem + chunk
	if !strings.Contains(text, "\n") {
		b.rem = text
		return nil
	}
	parts := strings.Split(text, "\n")
	b.rem = parts[len(parts)-1]
	return parts[:len(parts)-1]
}

// Pending returns the retained remainder: text received after the last
// newline, not yet a complete line.
func (b *LineBuffer) Pending() string {
	return b.rem
}
