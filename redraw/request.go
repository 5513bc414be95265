// Package redraw provides a totally ordered value expressing when the
// next frame should be drawn.
//
// A render loop typically accumulates several redraw demands between
// frames (an animation wants the next vsync, a cursor blink wants a
// wake-up in 500ms). Request makes merging them trivial: take the
// minimum, and that is the single earliest deadline to honor.
package redraw

import "time"

// Request expresses when a window should next be redrawn: either on
// the next frame tick, or no earlier than a specific instant.
//
// Request is an immutable value. It is freely copyable and comparable
// across goroutines since it holds only a timestamp.
//
// The ordering is a strict total order: NextFrame sorts before every
// timed request, and timed requests follow their instants. This makes
// taking the minimum of a collection of pending requests well-defined
// and associative.
type Request struct {
	at    time.Time
	timed bool
}

// NextFrame returns a request to redraw on the next display refresh.
// It is the most urgent request: it sorts before At(t) for every t.
func NextFrame() Request {
	return Request{}
}

// At returns a request to redraw no earlier than t.
func At(t time.Time) Request {
	return Request{at: t, timed: true}
}

// Time returns the deadline of a timed request. The second return
// value is false for NextFrame, which has no explicit deadline.
func (r Request) Time() (time.Time, bool) {
	return r.at, r.timed
}

// Compare orders two requests. It returns a negative number when r is
// more urgent than o, zero when they are equal, and a positive number
// when r is less urgent.
func (r Request) Compare(o Request) int {
	switch {
	case !r.timed && !o.timed:
		return 0
	case !r.timed:
		return -1
	case !o.timed:
		return 1
	default:
		return r.at.Compare(o.at)
	}
}

// Before reports whether r is strictly more urgent than o.
func (r Request) Before(o Request) bool {
	return r.Compare(o) < 0
}

// Equal reports whether two requests express the same deadline.
// Use it instead of == : like time.Time, Request values carry a
// monotonic clock reading that == also compares.
func (r Request) Equal(o Request) bool {
	return r.Compare(o) == 0
}

// String returns "NextFrame" or the formatted deadline.
func (r Request) String() string {
	if !r.timed {
		return "NextFrame"
	}
	return "At(" + r.at.Format(time.RFC3339Nano) + ")"
}

// Earliest merges pending requests into the single most urgent one.
func Earliest(first Request, rest ...Request) Request {
	earliest := first
	for _, r := range rest {
		if r.Before(earliest) {
			earliest = r
		}
	}
	return earliest
}
