package variant

import (
	"bytes"
	"log"
	"reflect"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EvConstruct, "Construct"},
		{EvAssign, "Assign"},
		{EvDestroy, "Destroy"},
		{EvMove, "Move"},
		{EvUnknown, "Event(0)"},
		{Event(9), "Event(9)"},
	}

	for _, test := range tests {
		if got := test.ev.String(); got != test.want {
			t.Errorf("TestEventString(%d): got %q, want %q", test.ev, got, test.want)
		}
	}
}

func TestLogObserver(t *testing.T) {
	buf := &bytes.Buffer{}
	u := New(intString, WithObserver(LogObserver{Logger: log.New(buf, "", 0), Prefix: "test "}))
	Assign(u, "a")
	Assign(u, "b")
	u.Destroy()

	want := "test variant: Construct int\n" +
		"test variant: Destroy int\n" +
		"test variant: Construct string\n" +
		"test variant: Assign string\n" +
		"test variant: Destroy string\n"
	if diff := pretty.Compare(want, buf.String()); diff != "" {
		t.Errorf("TestLogObserver: -want +got:\n%s", diff)
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	var events []Event
	both := ObserverFunc(func(ev Event, t reflect.Type) {
		events = append(events, ev)
		c.Observe(ev, t)
	})

	u := New(intString, WithObserver(both))
	s := u.Clone()
	Assign(s, "x")
	Take[string](s)

	want := []Event{EvConstruct, EvConstruct, EvDestroy, EvConstruct, EvMove}
	if diff := pretty.Compare(want, events); diff != "" {
		t.Errorf("TestCounter: events -want +got:\n%s", diff)
	}
	if got := CountOf[int](c, EvConstruct); got != 2 {
		t.Errorf("TestCounter: int constructs = %d, want 2", got)
	}
	if got := c.Count(reflect.TypeFor[bool](), EvConstruct); got != 0 {
		t.Errorf("TestCounter: bool constructs = %d, want 0", got)
	}
	c.Observe(Event(200), reflect.TypeFor[int]())

	c.Reset()
	if got := CountOf[int](c, EvConstruct); got != 0 {
		t.Errorf("TestCounter: after Reset() int constructs = %d, want 0", got)
	}
}
