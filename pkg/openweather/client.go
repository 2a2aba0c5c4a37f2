// Package openweather fetches the OpenWeatherMap 5-day/3-hour forecast and
// renames its fields into flat samples. There is no extraction logic here;
// the API already returns structured intervals.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

type Client struct {
	baseURL    string
	apiKey     string
	lat, lon   string
	httpClient *http.Client
}

func NewClient(apiKey, lat, lon string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) url() string {
	vals := make(url.Values)
	vals.Set("lat", c.lat)
	vals.Set("lon", c.lon)
	vals.Set("appid", c.apiKey)
	// metric keeps temperatures in Celsius and wind in m/s
	vals.Set("units", "metric")
	return c.baseURL + "?" + vals.Encode()
}

// Forecast fetches the forecast window, roughly five days of 3-hour samples.
func (c *Client) Forecast(ctx context.Context) ([]Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching forecast: status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}
	if len(payload.List) == 0 {
		return nil, errors.New("forecast response has no intervals; check API key and coordinates")
	}

	samples := make([]Sample, 0, len(payload.List))
	for _, item := range payload.List {
		s := Sample{
			Time:        time.Unix(item.Dt, 0).UTC(),
			TempC:       round2p(item.Main.Temp),
			FeelsLikeC:  round2p(item.Main.FeelsLike),
			PressureHpa: item.Main.Pressure,
			HumidityPct: item.Main.Humidity,
			WindSpeedMS: round2(item.Wind.Speed),
			WindDeg:     item.Wind.Deg,
			VisibilityM: item.Visibility,
			RainProb:    round2(item.Pop),
		}
		if len(item.Weather) > 0 {
			s.Main = item.Weather[0].Main
			s.Description = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}
