// Package weather looks up the current conditions at a coordinate through the
// Open-Meteo API. The result is purely presentational ambient context.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Condition is one of a fixed enumerated set of display pairs.
type Condition struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Report is the current weather at a coordinate.
type Report struct {
	TemperatureC float64   `json:"temperatureC"`
	Code         int       `json:"code"`
	Condition    Condition `json:"condition"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Current fetches the current temperature and weather code for a coordinate.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Report, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current_weather=true", c.BaseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Report{}, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather: status %d", resp.StatusCode)
	}

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("weather: decode response: %w", err)
	}

	code := payload.CurrentWeather.WeatherCode
	return Report{
		TemperatureC: payload.CurrentWeather.Temperature,
		Code:         code,
		Condition:    ConditionForCode(code),
	}, nil
}

// ConditionForCode maps a WMO weather code to its display pair.
func ConditionForCode(code int) Condition {
	switch {
	case code == 0:
		return Condition{Label: "Clear", Icon: "☀️"}
	case code >= 1 && code <= 3:
		return Condition{Label: "Cloudy", Icon: "⛅"}
	case code == 45 || code == 48:
		return Condition{Label: "Fog", Icon: "🌫️"}
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return Condition{Label: "Rain", Icon: "🌧️"}
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return Condition{Label: "Snow", Icon: "❄️"}
	case code >= 95 && code <= 99:
		return Condition{Label: "Storm", Icon: "⛈️"}
	}
	return Condition{Label: "Weather", Icon: "🌡️"}
}
