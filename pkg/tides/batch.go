package tides

import (
	"sort"
)

// Batch collects candidate events for one run and resolves duplicates.
// Sources overlap (a feed republishes days, a multi-day page fetch straddles
// a previous run), so events are keyed by their Timestamp and the last one
// added for a given timestamp wins.
type Batch struct {
	byTime map[string]Event
}

func NewBatch() *Batch {
	return &Batch{byTime: make(map[string]Event)}
}

// Add records an event, replacing any earlier event with the same timestamp.
func (b *Batch) Add(e Event) {
	b.byTime[e.Timestamp()] = e
}

func (b *Batch) Len() int {
	return len(b.byTime)
}

// Events returns the deduplicated events in ascending time order.
func (b *Batch) Events() []Event {
	events := make([]Event, 0, len(b.byTime))
	for _, e := range b.byTime {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}
