package openweather

import (
	"time"
)

// Sample is one 3-hour forecast interval, flattened and renamed for the
// hosted weather_forecast table. Fields the API may omit are pointers so a
// missing value stays NULL instead of becoming zero.
type Sample struct {
	// Forecast time in UTC, the row's natural key.
	Time        time.Time
	TempC       *float64
	FeelsLikeC  *float64
	PressureHpa *int
	HumidityPct *int
	// Condition summary, e.g. "Clouds" / "overcast clouds" / "04d".
	Main        string
	Description string
	Icon        string
	WindSpeedMS float64
	WindDeg     *int
	VisibilityM *int
	// Probability of precipitation, 0.00 to 1.00.
	RainProb float64
}

// forecastResponse is the subset of the 5-day/3-hour endpoint payload that
// the sync consumes.
type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Pressure  *int     `json:"pressure"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   *int    `json:"deg"`
	} `json:"wind"`
	Visibility *int    `json:"visibility"`
	Pop        float64 `json:"pop"`
}
