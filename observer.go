package variant

import (
	"log"
	"reflect"
	"strconv"
)

// Event is a lifecycle event of a value held in a Union.
type Event uint8

const (
	// EvUnknown should not be seen.
	EvUnknown Event = 0
	// EvConstruct is a new value being placed in an empty Union.
	EvConstruct Event = 1
	// EvAssign is a held value being overwritten in place by a value of the same type.
	EvAssign Event = 2
	// EvDestroy is a held value's life ending.
	EvDestroy Event = 3
	// EvMove is a held value changing owner without being copied or destroyed.
	EvMove Event = 4

	numEvents = 5
)

func (e Event) String() string {
	switch e {
	case EvConstruct:
		return "Construct"
	case EvAssign:
		return "Assign"
	case EvDestroy:
		return "Destroy"
	case EvMove:
		return "Move"
	}
	return "Event(" + strconv.Itoa(int(e)) + ")"
}

// Observer receives lifecycle events from a Union. See WithObserver.
type Observer interface {
	Observe(ev Event, t reflect.Type)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(ev Event, t reflect.Type)

// Observe implements Observer.
func (f ObserverFunc) Observe(ev Event, t reflect.Type) {
	f(ev, t)
}

// Counter is an Observer that counts events per type. A Counter may be shared by
// several Unions, but like a Union it is not safe for concurrent use.
type Counter struct {
	counts map[reflect.Type]*[numEvents]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: map[reflect.Type]*[numEvents]int{}}
}

// Observe implements Observer.
func (c *Counter) Observe(ev Event, t reflect.Type) {
	if ev >= numEvents {
		return
	}
	n, ok := c.counts[t]
	if !ok {
		n = &[numEvents]int{}
		c.counts[t] = n
	}
	n[ev]++
}

// Count returns how many times ev was seen for type t.
func (c *Counter) Count(t reflect.Type, ev Event) int {
	n, ok := c.counts[t]
	if !ok || ev >= numEvents {
		return 0
	}
	return n[ev]
}

// Reset zeroes all counts.
func (c *Counter) Reset() {
	clear(c.counts)
}

// CountOf is Count for the static type T.
func CountOf[T any](c *Counter, ev Event) int {
	return c.Count(reflect.TypeFor[T](), ev)
}

// LogObserver writes every event to Logger, or to the standard logger if Logger is nil.
type LogObserver struct {
	Logger *log.Logger
	// Prefix is written before every event.
	Prefix string
}

// Observe implements Observer.
func (l LogObserver) Observe(ev Event, t reflect.Type) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Println(l.Prefix+"variant:", ev, t)
}
