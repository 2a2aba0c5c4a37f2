// Package daypage scrapes per-day tide pages. A page is addressed by
// appending the day's YYYYMMDD stamp to a base URL and carries the day's
// tides as a table inside the #tides container: type in a td.tal cell, wall
// clock in a span inside a td.tac cell, height in a td.tar cell.
package daypage

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Letshaveago1/burryport-uk/pkg/tides"
	"github.com/Letshaveago1/burryport-uk/pkg/timetricks"
)

// DefaultBaseURL is the daily tide page prefix for Burry Port.
const DefaultBaseURL = "https://www.tidetimes.org.uk/burry-port-tide-times-"

type Client struct {
	baseURL    string
	httpClient *http.Client
	zone       *time.Location
}

func NewClient(baseURL string, zone *time.Location) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		zone: zone,
	}
}

func (c *Client) url(date time.Time) string {
	return c.baseURL + timetricks.DayStamp(date)
}

// FetchDay downloads one day page and extracts its tide table. Rows missing
// any of the three expected cells, or the span holding the wall clock, are
// skipped; rows whose height or clock will not parse are logged and dropped.
func (c *Client) FetchDay(ctx context.Context, date time.Time) ([]tides.Event, error) {
	addr := c.url(date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", addr, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", addr, err)
	}

	table := doc.Find("div#tides table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no tide table (#tides) on %s", addr)
	}

	var events []tides.Event
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.HasClass("colhead") {
			return // header row
		}
		if e, ok := c.parseRow(date, row); ok {
			events = append(events, e)
		}
	})
	return events, nil
}

func (c *Client) parseRow(date time.Time, row *goquery.Selection) (tides.Event, bool) {
	typeCell := row.Find("td.tal").First()
	clockCell := row.Find("td.tac").First()
	heightCell := row.Find("td.tar").First()
	if typeCell.Length() == 0 || clockCell.Length() == 0 || heightCell.Length() == 0 {
		return tides.Event{}, false
	}
	span := clockCell.Find("span").First()
	if span.Length() == 0 {
		return tides.Event{}, false
	}
	label := strings.TrimSpace(typeCell.Text())
	if label == "" {
		return tides.Event{}, false
	}

	height, err := tides.ParseHeight(heightCell.Text())
	if err != nil {
		log.Printf("dropping tide row on %s: %v", timetricks.DayStamp(date), err)
		return tides.Event{}, false
	}
	at, err := tides.Combine(date, strings.TrimSpace(span.Text()), c.zone)
	if err != nil {
		log.Printf("dropping tide row on %s: %v", timetricks.DayStamp(date), err)
		return tides.Event{}, false
	}
	return tides.Event{Time: at, Type: tides.Type(label), Height: height}, true
}
