package stream

// Kind discriminates the events a decoded response stream can carry.
type Kind int

const (
	// KindFragment is a piece of reply text to append to the output.
	KindFragment Kind = iota
	// KindEnd marks the normal end of the stream.
	KindEnd
	// KindError carries a failure reported by the service mid-stream.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindFragment:
		return "fragment"
	case KindEnd:
		return "end"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single decoded stream event. Text holds the fragment text for
// KindFragment and the failure message for KindError; it is empty for KindEnd.
type Event struct {
	Kind Kind
	Text string
}

// Sink receives decoded events in exactly the order they were decoded.
type Sink func(Event)
