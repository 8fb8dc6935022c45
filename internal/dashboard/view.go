package dashboard

import (
	"fmt"
	"math"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/weather"
)

// NotAvailable is shown for any reading the source did not report
const NotAvailable = "N/A"

// Gauge range and bands in °C
const (
	GaugeMin       = -20.0
	GaugeMax       = 50.0
	GaugeThreshold = 40.0
)

var gaugeBands = []Band{
	{From: -20, To: 0, Color: "lightblue"},
	{From: 0, To: 20, Color: "lightgreen"},
	{From: 20, To: 35, Color: "yellow"},
	{From: 35, To: 50, Color: "red"},
}

// Banner levels
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Request is one user selection: a city and an optional data source
type Request struct {
	City   string `json:"city"`
	Source string `json:"source,omitempty"`
}

// View is the render state for one request. The template and the JSON API
// consume it as a plain value.
type View struct {
	Request      Request   `json:"request"`
	City         string    `json:"city"`
	Status       string    `json:"status"`
	Source       string    `json:"source,omitempty"`
	SourceLabel  string    `json:"sourceLabel,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	Description  string    `json:"description,omitempty"`
	Tiles        []Tile    `json:"tiles"`
	Extras       []Tile    `json:"extras"`
	Gauge        *Gauge    `json:"gauge,omitempty"`
	Chart        *Chart    `json:"chart,omitempty"`
	Cards        []Card    `json:"cards"`
	OutlookCards []Card    `json:"outlookCards,omitempty"`
	Notice       string    `json:"notice,omitempty"`
	Banner       *Banner   `json:"banner,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastUpdated  string    `json:"lastUpdated"`
	Sequence     uint64    `json:"sequence,omitempty"`

	Forecast *weather.Forecast `json:"forecast,omitempty"`
}

type Tile struct {
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

type Band struct {
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Color     string  `json:"color"`
	OffsetPct float64 `json:"offsetPct"`
	WidthPct  float64 `json:"widthPct"`
}

// Gauge is the temperature dial; Value is clamped into [Min, Max]
type Gauge struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Value        float64 `json:"value"`
	Display      string  `json:"display"`
	Percent      float64 `json:"percent"`
	Bands        []Band  `json:"bands"`
	Threshold    float64 `json:"threshold"`
	ThresholdPct float64 `json:"thresholdPct"`
}

// Chart is the dual-axis 24-hour series. Humidity entries may be null.
type Chart struct {
	Labels       []string   `json:"labels"`
	Temperatures []float64  `json:"temperatures"`
	Humidity     []*float64 `json:"humidity"`
}

type Card struct {
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	HighLow     string `json:"highLow"`
}

type Banner struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func sourceLabel(provider string) string {
	switch provider {
	case weather.ProviderOpenMeteo:
		return "Open-Meteo"
	case weather.ProviderWttr:
		return "wttr.in"
	default:
		return provider
	}
}

func baseView(req Request, now time.Time) View {
	return View{
		Request:     req,
		City:        req.City,
		Tiles:       []Tile{},
		Extras:      []Tile{},
		Cards:       []Card{},
		UpdatedAt:   now,
		LastUpdated: now.Format("2006-01-02 15:04:05"),
	}
}

// NewView renders a fetch result
func NewView(req Request, loc types.Location, result weather.FetchResult, now time.Time) View {
	v := baseView(req, now)
	v.City = loc.DisplayName()
	v.Status = string(result.Status)

	if !result.OK() {
		v.Banner = &Banner{
			Level:   LevelError,
			Message: "Failed to fetch weather data. Please try a different city or data source.",
			Detail:  result.Reason,
		}
		return v
	}

	f := result.Forecast
	c := f.Current

	v.Forecast = f
	v.Source = string(f.Source)
	v.SourceLabel = sourceLabel(f.Provider)
	v.Icon = c.Condition.Icon
	v.Description = c.Condition.Description

	v.Tiles = []Tile{
		{Icon: "🌡️", Label: "Temperature", Value: formatTemp(c.Temperature), Detail: feelsLike(c.FeelsLike)},
		{Icon: "💧", Label: "Humidity", Value: formatPercent(c.HumidityPct)},
		{Icon: "💨", Label: "Wind Speed", Value: formatWind(c.WindSpeed, c.WindDirection)},
		{Icon: "🌤️", Label: "Condition", Value: c.Condition.Description},
		{Icon: "🧭", Label: "Pressure", Value: formatPressure(c.Pressure)},
		{Icon: "👁️", Label: "Visibility", Value: formatVisibility(c.VisibilityM)},
		{Icon: "☁️", Label: "Cloud Cover", Value: formatPercent(c.CloudCoverPct)},
		{Icon: "🌅", Label: "Sunrise / Sunset", Value: formatClock(c.Sunrise) + " / " + formatClock(c.Sunset)},
	}

	v.Gauge = NewGauge(c.Temperature.Celsius)

	if f.Source == weather.SourceFallback {
		v.Extras = []Tile{
			{Icon: "⬆️", Label: "Max", Value: formatOptionalTemp(c.TodayHigh)},
			{Icon: "⬇️", Label: "Min", Value: formatOptionalTemp(c.TodayLow)},
			{Icon: "🔆", Label: "UV Index", Value: formatNumber(c.UVIndex, "%.0f")},
		}
		v.Notice = "📊 Hourly forecast charts available with Open-Meteo source"
		v.OutlookCards = NewOutlookCards(f.Outlook)
		if req.Source != config.SourceWttr {
			v.Banner = &Banner{
				Level:   LevelWarning,
				Message: "Open-Meteo is unavailable; showing current conditions from wttr.in.",
			}
		}
		return v
	}

	v.Chart = NewChart(f.Hourly)
	v.Cards = NewCards(f.Daily)
	return v
}

// CityNotFoundView renders a failed geocode. Network failures share the
// "city not found" banner; a timeout asks the user to retry.
func CityNotFoundView(req Request, timedOut bool, detail string, now time.Time) View {
	v := baseView(req, now)
	v.Status = "not_found"
	v.Banner = &Banner{
		Level:   LevelError,
		Message: fmt.Sprintf("City not found: %s", req.City),
		Detail:  detail,
	}
	if timedOut {
		v.Banner.Message = fmt.Sprintf("Looking up %s timed out. Please try again.", req.City)
	}
	return v
}

// NewGauge clamps celsius into the gauge range
func NewGauge(celsius float64) *Gauge {
	span := GaugeMax - GaugeMin
	value := math.Max(GaugeMin, math.Min(GaugeMax, celsius))

	bands := make([]Band, len(gaugeBands))
	for i, b := range gaugeBands {
		b.OffsetPct = (b.From - GaugeMin) / span * 100
		b.WidthPct = (b.To - b.From) / span * 100
		bands[i] = b
	}

	return &Gauge{
		Min:          GaugeMin,
		Max:          GaugeMax,
		Value:        value,
		Display:      fmt.Sprintf("%.1f°C", celsius),
		Percent:      (value - GaugeMin) / span * 100,
		Bands:        bands,
		Threshold:    GaugeThreshold,
		ThresholdPct: (GaugeThreshold - GaugeMin) / span * 100,
	}
}

func NewChart(points []weather.ForecastPoint) *Chart {
	chart := &Chart{
		Labels:       make([]string, 0, len(points)),
		Temperatures: make([]float64, 0, len(points)),
		Humidity:     make([]*float64, 0, len(points)),
	}
	for _, p := range points {
		chart.Labels = append(chart.Labels, p.Time.Format("Mon 15:04"))
		chart.Temperatures = append(chart.Temperatures, p.Temperature.Celsius)
		if h, ok := p.HumidityPct.Get(); ok {
			chart.Humidity = append(chart.Humidity, &h)
		} else {
			chart.Humidity = append(chart.Humidity, nil)
		}
	}
	return chart
}

func NewCards(days []weather.DailyForecast) []Card {
	cards := make([]Card, 0, len(days))
	for _, d := range days {
		cards = append(cards, Card{
			Label:       d.Date.Format("Mon 01/02"),
			Icon:        d.Condition.Icon,
			Description: d.Condition.Description,
			HighLow:     fmt.Sprintf("%.0f°/%.0f°", d.High.Celsius, d.Low.Celsius),
		})
	}
	return cards
}

// NewOutlookCards labels the fallback's days Today, Tomorrow, Day 3 and so on
func NewOutlookCards(days []weather.OutlookDay) []Card {
	cards := make([]Card, 0, len(days))
	for i, d := range days {
		cards = append(cards, Card{
			Label:       outlookLabel(i),
			Icon:        d.Condition.Icon,
			Description: d.Condition.Description,
			HighLow:     formatOptionalDegrees(d.High) + "/" + formatOptionalDegrees(d.Low),
		})
	}
	return cards
}

func outlookLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("Day %d", i+1)
	}
}

func formatOptionalDegrees(t types.Optional[types.Temperature]) string {
	if v, ok := t.Get(); ok {
		return fmt.Sprintf("%.0f°", v.Celsius)
	}
	return NotAvailable
}

// Glyph is the symbol shown in front of the banner, chosen by level
func (b Banner) Glyph() string {
	switch b.Level {
	case LevelError:
		return "❌"
	case LevelWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

func formatTemp(t types.Temperature) string {
	return fmt.Sprintf("%.1f°C", t.Celsius)
}

func formatOptionalTemp(t types.Optional[types.Temperature]) string {
	if v, ok := t.Get(); ok {
		return formatTemp(v)
	}
	return NotAvailable
}

func feelsLike(t types.Optional[types.Temperature]) string {
	if v, ok := t.Get(); ok {
		return fmt.Sprintf("Feels like %.1f°C", v.Celsius)
	}
	return ""
}

func formatPercent(p types.Optional[float64]) string {
	return formatNumber(p, "%.0f%%")
}

func formatNumber(n types.Optional[float64], format string) string {
	if v, ok := n.Get(); ok {
		return fmt.Sprintf(format, v)
	}
	return NotAvailable
}

func formatWind(speed types.Optional[types.WindSpeed], dir types.Optional[types.WindDirection]) string {
	s, ok := speed.Get()
	if !ok {
		return NotAvailable
	}
	value := fmt.Sprintf("%.1f km/h", s.Kph)
	if d, ok := dir.Get(); ok && d.Degrees >= 0 {
		value += " " + d.Cardinal
	}
	return value
}

func formatPressure(p types.Optional[types.Pressure]) string {
	if v, ok := p.Get(); ok {
		return fmt.Sprintf("%.0f hPa", v.HPa)
	}
	return NotAvailable
}

func formatVisibility(m types.Optional[float64]) string {
	v, ok := m.Get()
	if !ok {
		return NotAvailable
	}
	if v >= 1000 {
		return fmt.Sprintf("%.1f km", v/1000)
	}
	return fmt.Sprintf("%.0f m", v)
}

func formatClock(t types.Optional[time.Time]) string {
	if v, ok := t.Get(); ok {
		return v.Format("15:04")
	}
	return NotAvailable
}
