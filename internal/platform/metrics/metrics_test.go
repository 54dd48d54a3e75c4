package metrics

import (
	"errors"
	"testing"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record("update", nil)
	c.Record("add", nil)
	c.Record("add", errors.New("bad input"))

	got := c.Snapshot()
	want := []any{"add", uint64(2), "update", uint64(1), "commandsTotal", uint64(3), "failuresTotal", uint64(1)}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
