package tides

import (
	"fmt"
	"time"
)

// ZoneName is the IANA zone of the observation site. The site publishes wall
// clock times, so the zone must carry real DST rules for the GMT/BST switch.
const ZoneName = "Europe/London"

// Type classifies a tide event.
type Type string

const (
	High Type = "High"
	Low  Type = "Low"
)

func (t Type) Valid() bool {
	return t == High || t == Low
}

// Event is a single predicted high or low tide.
type Event struct {
	// Local time of the tide, zone-aware.
	Time time.Time
	// High or Low.
	Type Type
	// Height in metres above chart datum, rounded to 2 decimals.
	Height float64
}

// Timestamp renders the event time as RFC 3339 with its UTC offset. It is the
// natural key for deduplication and for the hosted table's upsert.
func (e Event) Timestamp() string {
	return e.Time.Format(time.RFC3339)
}

func (e Event) String() string {
	return fmt.Sprintf("{t: %s, type: %s, height: %.2fm}",
		e.Timestamp(), e.Type, e.Height)
}
