package tides

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBatchLastWriteWins(t *testing.T) {
	loc := mustZone(t)
	at := time.Date(2024, time.June, 1, 6, 15, 0, 0, loc)

	b := NewBatch()
	b.Add(Event{Time: at, Type: High, Height: 7.42})
	b.Add(Event{Time: at, Type: High, Height: 7.51})

	want := []Event{{Time: at, Type: High, Height: 7.51}}
	if diff := cmp.Diff(b.Events(), want); diff != "" {
		t.Errorf("incorrect batch (-got,+want): %s", diff)
	}
}

func TestBatchSortsAscending(t *testing.T) {
	loc := mustZone(t)
	times := []time.Time{
		time.Date(2024, time.June, 3, 18, 40, 0, 0, loc),
		time.Date(2024, time.June, 2, 12, 1, 0, 0, loc),
		time.Date(2024, time.June, 1, 6, 15, 0, 0, loc),
	}

	// inserted newest first
	b := NewBatch()
	for _, at := range times {
		b.Add(Event{Time: at, Type: Low, Height: 1.1})
	}

	events := b.Events()
	if len(events) != len(times) {
		t.Fatalf("got %d events, want %d", len(events), len(times))
	}
	for i := 1; i < len(events); i++ {
		if !events[i-1].Time.Before(events[i].Time) {
			t.Errorf("events out of order at %d: %s !< %s",
				i, events[i-1].Timestamp(), events[i].Timestamp())
		}
	}
}
