// Package stream implements incremental decoding of the coaching service's
// streaming chat responses. The wire format is newline-delimited: lines
// prefixed with "data: " carry either a JSON record with a text fragment or
// an error message, or the [DONE] sentinel that ends the stream. Everything
// else (blank lines, comments, keep-alives) is ignored.
package stream

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// payload is the JSON record carried on a data line.
type payload struct {
	Chunk *string `json:"chunk"`
	Error *string `json:"error"`
}

// Decoder reads one response stream from a byte source and delivers decoded
// events to a sink. It owns the source: Run closes it exactly once on every
// exit path. A Decoder decodes a single stream; it must not be reused.
type Decoder struct {
	source io.ReadCloser
	lines  LineBuffer
	carry  []byte
}

// NewDecoder returns a Decoder that will consume source.
func NewDecoder(source io.ReadCloser) *Decoder {
	return &Decoder{source: source}
}

// Run decodes the stream until the [DONE] sentinel, an error record, EOF, a
// read failure, or cancellation, delivering events to sink in decode order.
// The sentinel and error records stop the loop without reading further. A
// stream that ends without a sentinel is not an error. Run returns non-nil
// only for a read failure or a canceled context; service-reported errors
// arrive at the sink as KindError events.
func (d *Decoder) Run(ctx context.Context, sink Sink) error {
	defer d.source.Close()

	buf := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, rerr := d.source.Read(buf)
		if n > 0 {
			for _, line := range d.lines.Feed(d.decode(buf[:n])) {
				ev, ok := classify(line)
				if !ok {
					continue
				}
				sink(ev)
				if ev.Kind == KindEnd || ev.Kind == KindError {
					return nil
				}
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return nil
			}
			return rerr
		}
	}
}

// decode converts raw bytes to text, holding back an incomplete trailing
// UTF-8 sequence so a multi-byte character split across two reads decodes
// intact exactly once.
func (d *Decoder) decode(p []byte) string {
	b := p
	if len(d.carry) > 0 {
		b = append(append([]byte(nil), d.carry...), p...)
		d.carry = nil
	}
	cut := len(b)
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				cut = i
			}
			break
		}
	}
	if cut < len(b) {
		d.carry = append([]byte(nil), b[cut:]...)
	}
	return string(b[:cut])
}

// classify parses one complete line into an event. Lines without the exact
// "data: " prefix and records that fail to parse or carry neither field are
// skipped.
func classify(line string) (Event, bool) {
	rest, ok := strings.CutPrefix(line, dataPrefix)
	if !ok {
		return Event{}, false
	}
	rest = strings.TrimSpace(rest)
	if rest == doneSentinel {
		return Event{Kind: KindEnd}, true
	}
	var p payload
	if err := json.Unmarshal([]byte(rest), &p); err != nil {
		return Event{}, false
	}
	if p.Error != nil {
		return Event{Kind: KindError, Text: *p.Error}, true
	}
	if p.Chunk != nil {
		return Event{Kind: KindFragment, Text: *p.Chunk}, true
	}
	return Event{}, false
}
