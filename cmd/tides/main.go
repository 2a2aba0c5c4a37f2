// Command tides syncs the tide-times RSS feed into the hosted tides table.
// One run is one linear pass: fetch the feed, normalize its listings,
// deduplicate, upsert. Failures are logged; only startup configuration
// problems exit non-zero.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Letshaveago1/burryport-uk/pkg/config"
	"github.com/Letshaveago1/burryport-uk/pkg/data"
	"github.com/Letshaveago1/burryport-uk/pkg/feed"
	"github.com/Letshaveago1/burryport-uk/pkg/tides"
)

func main() {
	log.SetPrefix("tides: ")

	var env config.Tides
	if err := config.Process(&env); err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	env.ApplyDefaults()

	store, err := data.Open(env.DatabaseURL)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	zone, err := time.LoadLocation(tides.ZoneName)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	log.Printf("fetching tide feed %s", env.FeedURL)
	events, err := feed.NewClient(env.FeedURL, zone).Fetch(context.Background())
	if err != nil {
		log.Printf("fetch failed: %v", err)
		return
	}

	batch := tides.NewBatch()
	for _, e := range events {
		batch.Add(e)
	}
	if batch.Len() == 0 {
		log.Print("no tide records to insert")
		return
	}

	records := data.FromEvents(batch.Events())
	log.Printf("prepared %d tide records", len(records))
	if err := store.UpsertTides(records); err != nil {
		log.Printf("upsert failed: %v", err)
		log.Print("hint: ensure the tides table has a UNIQUE constraint on tide_time")
		return
	}
	log.Printf("stored %d tide records", len(records))
}
