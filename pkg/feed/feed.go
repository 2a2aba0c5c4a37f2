// Package feed reads the tide-times RSS feed. Each entry covers one calendar
// day and embeds that day's tide listings in its HTML description; the entry's
// published date supplies the calendar date the listings attach to.
package feed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Letshaveago1/burryport-uk/pkg/tides"
)

// DefaultURL is the published tide prediction feed for Burry Port.
const DefaultURL = "https://www.tidetimes.org.uk/burry-port-tide-times.rss"

type Client struct {
	url    string
	parser *gofeed.Parser
	zone   *time.Location
}

func NewClient(url string, zone *time.Location) *Client {
	return &Client{
		url:    url,
		parser: gofeed.NewParser(),
		zone:   zone,
	}
}

// Fetch downloads the feed and extracts every tide listing it carries, in
// document order. Entries without a published date are skipped; listing lines
// that match the tide pattern but fail to parse are logged and dropped. A
// feed with no entries yields no events and a warning, not an error.
func (c *Client) Fetch(ctx context.Context) ([]tides.Event, error) {
	f, err := c.parser.ParseURLWithContext(c.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching tide feed %s: %w", c.url, err)
	}
	if len(f.Items) == 0 {
		log.Printf("warning: tide feed %s has no entries", c.url)
		return nil, nil
	}

	var events []tides.Event
	for _, item := range f.Items {
		if item.PublishedParsed == nil {
			log.Printf("skipping feed entry with no date: %q", item.Title)
			continue
		}
		events = append(events, c.extract(*item.PublishedParsed, item.Description)...)
	}
	return events, nil
}

// extract scans a decoded entry description for tide listings. Markup is
// stripped to line breaks first; most resulting lines are not listings and
// are passed over silently.
func (c *Client) extract(published time.Time, description string) []tides.Event {
	var events []tides.Event
	for _, raw := range strings.Split(tides.StripTags(description), "\n") {
		raw = strings.TrimSpace(raw)
		line, ok, err := tides.ScanLine(raw)
		if err != nil {
			log.Printf("dropping tide line %q: %v", raw, err)
			continue
		}
		if !ok {
			continue
		}
		at, err := tides.Combine(published, line.Clock, c.zone)
		if err != nil {
			log.Printf("dropping tide line %q: %v", raw, err)
			continue
		}
		events = append(events, tides.Event{Time: at, Type: line.Type, Height: line.Height})
	}
	return events
}
