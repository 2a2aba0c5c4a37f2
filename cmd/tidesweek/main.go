// Command tidesweek syncs a window of per-day tide pages, today onwards, into
// the hosted tides table. Days are fetched sequentially; a day that fails to
// fetch or parse is logged and skipped, and the remaining days still land.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Letshaveago1/burryport-uk/pkg/config"
	"github.com/Letshaveago1/burryport-uk/pkg/data"
	"github.com/Letshaveago1/burryport-uk/pkg/daypage"
	"github.com/Letshaveago1/burryport-uk/pkg/tides"
	"github.com/Letshaveago1/burryport-uk/pkg/timetricks"
)

func main() {
	log.SetPrefix("tidesweek: ")

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

	ctx := context.Background()
	client := daypage.NewClient(env.PageBaseURL, zone)
	batch := tides.NewBatch()
	for _, date := range timetricks.Days(time.Now().In(zone), env.ForecastDays) {
		stamp := timetricks.DayStamp(date)
		log.Printf("fetching tide page for %s", stamp)
		events, err := client.FetchDay(ctx, date)
		if err != nil {
			log.Printf("skipping %s: %v", stamp, err)
			continue
		}
		for _, e := range events {
			batch.Add(e)
		}
	}

	if batch.Len() == 0 {
		log.Print("run finished, but no tide records were collected")
		return
	}

	records := data.FromEvents(batch.Events())
	log.Printf("collected %d tide records over %d days", len(records), env.ForecastDays)
	if err := store.UpsertTides(records); err != nil {
		log.Printf("upsert failed: %v", err)
		log.Print("hint: ensure the tides table has a UNIQUE constraint on tide_time")
		return
	}
	log.Printf("stored %d tide records", len(records))
}
