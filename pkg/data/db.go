// Package data persists normalized records to the hosted Postgres database.
// Both tables are keyed by their timestamp column; writes are upserts against
// that key, so re-running a sync refreshes predictions in place. The schema
// itself is owned by the hosted database, not migrated from here.
package data

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Letshaveago1/burryport-uk/pkg/openweather"
	"github.com/Letshaveago1/burryport-uk/pkg/tides"
)

// TideRecord is one row of the tides table. TideTime must carry a UNIQUE
// constraint in the hosted schema for the upsert to land.
type TideRecord struct {
	TideTime time.Time `gorm:"column:tide_time;primaryKey"`
	TideType string    `gorm:"column:tide_type"`
	HeightM  float64   `gorm:"column:height_m"`
}

func (TideRecord) TableName() string { return "tides" }

// ForecastRecord is one row of the weather_forecast table, keyed by
// ForecastTime (UTC).
type ForecastRecord struct {
	ForecastTime       time.Time `gorm:"column:forecast_time;primaryKey"`
	TempC              *float64  `gorm:"column:temp_c"`
	FeelsLikeC         *float64  `gorm:"column:feels_like_c"`
	PressureHpa        *int      `gorm:"column:pressure_hpa"`
	HumidityPercent    *int      `gorm:"column:humidity_percent"`
	WeatherMain        string    `gorm:"column:weather_main"`
	WeatherDescription string    `gorm:"column:weather_description"`
	WeatherIcon        string    `gorm:"column:weather_icon"`
	WindSpeedMps       float64   `gorm:"column:wind_speed_mps"`
	WindDeg            *int      `gorm:"column:wind_deg"`
	VisibilityM        *int      `gorm:"column:visibility_m"`
	RainProb           float64   `gorm:"column:rain_prob"`
}

func (ForecastRecord) TableName() string { return "weather_forecast" }

type Store struct {
	db *gorm.DB
}

// Open connects to the database named by dsn. Missing or wrong credentials
// surface here, before any fetching starts.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return &Store{db: db}, nil
}

// UpsertTides writes the batch, replacing rows that share a tide_time.
func (s *Store) UpsertTides(records []TideRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tide_time"}},
		DoUpdates: clause.AssignmentColumns([]string{"tide_type", "height_m"}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("upserting %d tide records: %w", len(records), err)
	}
	return nil
}

// UpsertForecast writes the batch, replacing rows that share a forecast_time.
func (s *Store) UpsertForecast(records []ForecastRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "forecast_time"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"temp_c", "feels_like_c", "pressure_hpa", "humidity_percent",
			"weather_main", "weather_description", "weather_icon",
			"wind_speed_mps", "wind_deg", "visibility_m", "rain_prob",
		}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("upserting %d forecast records: %w", len(records), err)
	}
	return nil
}

// FromEvents converts normalized tide events to rows.
func FromEvents(events []tides.Event) []TideRecord {
	records := make([]TideRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TideRecord{
			TideTime: e.Time,
			TideType: string(e.Type),
			HeightM:  e.Height,
		})
	}
	return records
}

// FromSamples converts forecast samples to rows.
func FromSamples(samples []openweather.Sample) []ForecastRecord {
	records := make([]ForecastRecord, 0, len(samples))
	for _, s := range samples {
		records = append(records, ForecastRecord{
			ForecastTime:       s.Time,
			TempC:              s.TempC,
			FeelsLikeC:         s.FeelsLikeC,
			PressureHpa:        s.PressureHpa,
			HumidityPercent:    s.HumidityPct,
			WeatherMain:        s.Main,
			WeatherDescription: s.Description,
			WeatherIcon:        s.Icon,
			WindSpeedMps:       s.WindSpeedMS,
			WindDeg:            s.WindDeg,
			VisibilityM:        s.VisibilityM,
			RainProb:           s.RainProb,
		})
	}
	return records
}
