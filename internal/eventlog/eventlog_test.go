package eventlog

import (
	"reflect"
	"testing"
)

func TestPushAndWindow(t *testing.T) {
	log := New(10)
	for _, line := range []string{"a", "b", "c", "d"} {
		log.Push(line)
	}

	if got := log.Window(2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Window(2) = %v", got)
	}

	log.ScrollDown()
	log.ScrollDown()
	if got := log.Window(5); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("Window(5) after scrolling = %v", got)
	}
	if last, ok := log.Last(); !ok || last != "d" {
		t.Fatalf("Last() = %q, %t", last, ok)
	}
}

func TestScrollBounds(t *testing.T) {
	log := New(10)
	log.Push("only")

	if log.ScrollUp() {
		t.Fatalf("ScrollUp at the top reported movement")
	}
	if !log.ScrollDown() || log.TopIndex != 1 {
		t.Fatalf("ScrollDown did not move to the end, TopIndex = %d", log.TopIndex)
	}
	if log.ScrollDown() {
		t.Fatalf("ScrollDown past the end reported movement")
	}
	if got := log.Window(3); len(got) != 0 {
		t.Fatalf("Window past the end = %v, want empty", got)
	}
}

func TestCapacityDropsOldest(t *testing.T) {
	log := New(3)
	log.Push("1")
	log.Push("2")
	log.Push("3")
	log.ScrollDown()
	log.ScrollDown()
	log.Push("4")

	if got := log.Lines(); !reflect.DeepEqual(got, []string{"2", "3", "4"}) {
		t.Fatalf("Lines() = %v", got)
	}
	if log.TopIndex != 1 {
		t.Fatalf("TopIndex = %d, want 1 after dropping one line", log.TopIndex)
	}

	if New(0).capacity != DefaultCapacity {
		t.Fatalf("non-positive capacity not defaulted")
	}
}
