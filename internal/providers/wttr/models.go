package wttr

import (
	"strconv"
	"strings"
)

// APIResponse is the ?format=j1 payload. wttr.in sends every number as a string.
type APIResponse struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	NearestArea      []NearestArea      `json:"nearest_area"`
	Request          []RequestInfo      `json:"request"`
	Weather          []DailyWeather     `json:"weather"`
}

type CurrentCondition struct {
	FeelsLikeC       string      `json:"FeelsLikeC"`
	FeelsLikeF       string      `json:"FeelsLikeF"`
	Cloudcover       string      `json:"cloudcover"`
	Humidity         string      `json:"humidity"`
	LocalObsDateTime string      `json:"localObsDateTime"`
	ObservationTime  string      `json:"observation_time"`
	PrecipMM         string      `json:"precipMM"`
	Pressure         string      `json:"pressure"`
	TempC            string      `json:"temp_C"`
	TempF            string      `json:"temp_F"`
	UvIndex          string      `json:"uvIndex"`
	Visibility       string      `json:"visibility"`
	WeatherCode      string      `json:"weatherCode"`
	WeatherDesc      []TextValue `json:"weatherDesc"`
	Winddir16Point   string      `json:"winddir16Point"`
	WinddirDegree    string      `json:"winddirDegree"`
	WindspeedKmph    string      `json:"windspeedKmph"`
}

type NearestArea struct {
	AreaName  []TextValue `json:"areaName"`
	Country   []TextValue `json:"country"`
	Region    []TextValue `json:"region"`
	Latitude  string      `json:"latitude"`
	Longitude string      `json:"longitude"`
}

type RequestInfo struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

type DailyWeather struct {
	Astronomy []Astronomy     `json:"astronomy"`
	Date      string          `json:"date"`
	Hourly    []HourlyWeather `json:"hourly"`
	MaxtempC  string          `json:"maxtempC"`
	MintempC  string          `json:"mintempC"`
	UvIndex   string          `json:"uvIndex"`
}

// HourlyWeather is one three-hour slot; "time" counts from "0" to "2100"
type HourlyWeather struct {
	Time        string      `json:"time"`
	TempC       string      `json:"tempC"`
	WeatherCode string      `json:"weatherCode"`
	WeatherDesc []TextValue `json:"weatherDesc"`
}

type Astronomy struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// TextValue is wttr.in's [{"value": "..."}] wrapper
type TextValue struct {
	Value string `json:"value"`
}

// FirstValue returns the first wrapped string or ""
func FirstValue(values []TextValue) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

// ParseNumber reads a numeric string field. Blank or non-numeric input is reported as unknown.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
