// Command weather syncs the OpenWeatherMap 5-day/3-hour forecast into the
// hosted weather_forecast table, keyed on forecast_time.
package main

import (
	"context"
	"log"

	"github.com/Letshaveago1/burryport-uk/pkg/config"
	"github.com/Letshaveago1/burryport-uk/pkg/data"
	"github.com/Letshaveago1/burryport-uk/pkg/openweather"
)

func main() {
	log.SetPrefix("weather: ")

	var env config.Weather
	if err := config.Process(&env); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	store, err := data.Open(env.DatabaseURL)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	log.Printf("fetching forecast for lat=%s lon=%s", env.Lat, env.Lon)
	samples, err := openweather.NewClient(env.APIKey, env.Lat, env.Lon).Forecast(context.Background())
	if err != nil {
		log.Printf("fetch failed: %v", err)
		return
	}

	records := data.FromSamples(samples)
	log.Printf("prepared %d forecast records", len(records))
	if err := store.UpsertForecast(records); err != nil {
		log.Printf("upsert failed: %v", err)
		log.Print("hint: ensure weather_forecast has a UNIQUE constraint on forecast_time")
		return
	}
	log.Printf("stored %d forecast records", len(records))
}
