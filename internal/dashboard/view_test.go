package dashboard

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/weather"
)

var fixedNow = time.Date(2025, 1, 15, 14, 5, 0, 0, time.UTC)

func TestNewGauge(t *testing.T) {
	tests := []struct {
		name        string
		celsius     float64
		wantValue   float64
		wantPercent float64
		wantDisplay string
	}{
		{name: "inside range", celsius: 15, wantValue: 15, wantPercent: 50, wantDisplay: "15.0°C"},
		{name: "lower bound", celsius: -20, wantValue: -20, wantPercent: 0, wantDisplay: "-20.0°C"},
		{name: "clamped below", celsius: -35.5, wantValue: -20, wantPercent: 0, wantDisplay: "-35.5°C"},
		{name: "clamped above", celsius: 56, wantValue: 50, wantPercent: 100, wantDisplay: "56.0°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGauge(tt.celsius)
			if g.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", g.Value, tt.wantValue)
			}
			if math.Abs(g.Percent-tt.wantPercent) > 1e-9 {
				t.Errorf("Percent = %v, want %v", g.Percent, tt.wantPercent)
			}
			if g.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", g.Display, tt.wantDisplay)
			}
			if len(g.Bands) != 4 {
				t.Fatalf("len(Bands) = %d, want 4", len(g.Bands))
			}
			total := 0.0
			for _, b := range g.Bands {
				total += b.WidthPct
			}
			if math.Abs(total-100) > 1e-9 {
				t.Errorf("bands cover %v%%, want 100%%", total)
			}
			if math.Abs(g.ThresholdPct-(60.0/70.0*100)) > 1e-9 {
				t.Errorf("ThresholdPct = %v", g.ThresholdPct)
			}
		})
	}
}

func fallbackForecast() *weather.Forecast {
	return &weather.Forecast{
		Location: types.Location{ResolvedName: "Paris"},
		Current: weather.CurrentConditions{
			Temperature: types.NewTemperatureFromCelsius(8),
			FeelsLike:   types.Known(types.NewTemperatureFromCelsius(6)),
			HumidityPct: types.Known(81.0),
			WindSpeed:   types.Known(types.NewWindSpeedFromKph(13)),
			Condition:   types.NewWeatherFromText(types.PartlyCloudy, "Partly cloudy"),
			TodayHigh:   types.Known(types.NewTemperatureFromCelsius(10)),
		},
		Hourly: []weather.ForecastPoint{},
		Daily:  []weather.DailyForecast{},
		Outlook: []weather.OutlookDay{
			{
				Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				High:      types.Known(types.NewTemperatureFromCelsius(10)),
				Low:       types.Known(types.NewTemperatureFromCelsius(4)),
				Condition: types.NewWeatherFromText(types.Overcast, "Cloudy"),
			},
			{
				Date:      time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
				High:      types.Known(types.NewTemperatureFromCelsius(9.4)),
				Low:       types.Known(types.NewTemperatureFromCelsius(2.6)),
				Condition: types.NewWeatherFromText(types.RainModerate, "Moderate rain"),
			},
			{
				Date:      time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
				Low:       types.Known(types.NewTemperatureFromCelsius(0)),
				Condition: types.NewWeatherFromText(types.ClearSky, "Sunny"),
			},
		},
		Source:   weather.SourceFallback,
		Provider: weather.ProviderWttr,
	}
}

func TestNewView_Fallback(t *testing.T) {
	loc := types.Location{Query: "Paris", ResolvedName: "Paris"}
	result := weather.Success(fallbackForecast())

	tests := []struct {
		name       string
		source     string
		wantBanner bool
	}{
		{name: "primary requested but down", source: config.SourceOpenMeteo, wantBanner: true},
		{name: "wttr requested", source: config.SourceWttr, wantBanner: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(Request{City: "Paris", Source: tt.source}, loc, result, fixedNow)

			if (v.Banner != nil) != tt.wantBanner {
				t.Errorf("Banner = %+v, want present=%v", v.Banner, tt.wantBanner)
			}
			if v.SourceLabel != "wttr.in" {
				t.Errorf("SourceLabel = %q, want wttr.in", v.SourceLabel)
			}
			if v.Chart != nil || len(v.Cards) != 0 {
				t.Error("fallback view should have no chart or cards")
			}
			if !strings.Contains(v.Notice, "Open-Meteo") {
				t.Errorf("Notice = %q, want an Open-Meteo hint", v.Notice)
			}

			tiles := tilesByLabel(v.Tiles)
			if tiles["Temperature"].Detail != "Feels like 6.0°C" {
				t.Errorf("Temperature detail = %q", tiles["Temperature"].Detail)
			}
			if tiles["Pressure"].Value != NotAvailable {
				t.Errorf("Pressure = %q, want N/A for an unknown reading", tiles["Pressure"].Value)
			}
			if tiles["Visibility"].Value != NotAvailable {
				t.Errorf("Visibility = %q, want N/A", tiles["Visibility"].Value)
			}
			if tiles["Sunrise / Sunset"].Value != "N/A / N/A" {
				t.Errorf("Sunrise / Sunset = %q", tiles["Sunrise / Sunset"].Value)
			}

			extras := tilesByLabel(v.Extras)
			if extras["Max"].Value != "10.0°C" || extras["Min"].Value != NotAvailable {
				t.Errorf("extras = %+v", v.Extras)
			}
		})
	}
}

func TestNewView_FallbackOutlook(t *testing.T) {
	loc := types.Location{Query: "Paris", ResolvedName: "Paris"}
	v := NewView(Request{City: "Paris", Source: config.SourceWttr}, loc, weather.Success(fallbackForecast()), fixedNow)

	want := []Card{
		{Label: "Today", Icon: types.GetWeatherIcon(types.Overcast), Description: "Cloudy", HighLow: "10°/4°"},
		{Label: "Tomorrow", Icon: types.GetWeatherIcon(types.RainModerate), Description: "Moderate rain", HighLow: "9°/3°"},
		{Label: "Day 3", Icon: types.GetWeatherIcon(types.ClearSky), Description: "Sunny", HighLow: "N/A/0°"},
	}
	if len(v.OutlookCards) != len(want) {
		t.Fatalf("len(OutlookCards) = %d, want %d", len(v.OutlookCards), len(want))
	}
	for i := range want {
		if v.OutlookCards[i] != want[i] {
			t.Errorf("OutlookCards[%d] = %+v, want %+v", i, v.OutlookCards[i], want[i])
		}
	}
	if len(v.Cards) != 0 {
		t.Errorf("Cards = %+v, want none for the fallback", v.Cards)
	}
}

func TestNewView_PrimaryHasNoOutlook(t *testing.T) {
	f := fallbackForecast()
	f.Source = weather.SourcePrimary
	f.Provider = weather.ProviderOpenMeteo

	v := NewView(Request{City: "Paris"}, types.Location{ResolvedName: "Paris"}, weather.Success(f), fixedNow)
	if len(v.OutlookCards) != 0 {
		t.Errorf("OutlookCards = %+v, want none for the primary source", v.OutlookCards)
	}
}

func TestBanner_Glyph(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{level: LevelError, want: "❌"},
		{level: LevelWarning, want: "⚠️"},
		{level: LevelInfo, want: "ℹ️"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (Banner{Level: tt.level}).Glyph(); got != tt.want {
				t.Errorf("Glyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewView_ZeroIsNotUnknown(t *testing.T) {
	f := fallbackForecast()
	f.Current.VisibilityM = types.Known(0.0)
	f.Current.CloudCoverPct = types.Known(0.0)

	v := NewView(Request{City: "Paris", Source: config.SourceWttr}, f.Location, weather.Success(f), fixedNow)

	tiles := tilesByLabel(v.Tiles)
	if tiles["Visibility"].Value != "0 m" {
		t.Errorf("Visibility = %q, want 0 m", tiles["Visibility"].Value)
	}
	if tiles["Cloud Cover"].Value != "0%" {
		t.Errorf("Cloud Cover = %q, want 0%%", tiles["Cloud Cover"].Value)
	}
}

func TestNewView_Unavailable(t *testing.T) {
	v := NewView(Request{City: "Paris"}, types.Location{ResolvedName: "Paris"}, weather.Unavailable("wttr: network timeout"), fixedNow)

	if v.Status != string(weather.StatusUnavailable) {
		t.Errorf("Status = %q, want unavailable", v.Status)
	}
	if v.Banner == nil || v.Banner.Level != LevelError || v.Banner.Detail != "wttr: network timeout" {
		t.Errorf("Banner = %+v", v.Banner)
	}
	if v.Tiles == nil || v.Cards == nil {
		t.Error("slices should be empty, not nil")
	}
	if v.LastUpdated != "2025-01-15 14:05:00" {
		t.Errorf("LastUpdated = %q", v.LastUpdated)
	}
}

func TestNewCards(t *testing.T) {
	days := []weather.DailyForecast{
		{
			Date:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			High:      types.NewTemperatureFromCelsius(9.5),
			Low:       types.NewTemperatureFromCelsius(-1.2),
			Condition: types.NewWeather(int(types.Overcast)),
		},
	}

	cards := NewCards(days)
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	if cards[0].Label != "Wed 01/15" {
		t.Errorf("Label = %q, want Wed 01/15", cards[0].Label)
	}
	if cards[0].HighLow != "10°/-1°" {
		t.Errorf("HighLow = %q, want 10°/-1°", cards[0].HighLow)
	}
	if cards[0].Icon != "☁️" || cards[0].Description != "Overcast" {
		t.Errorf("card = %+v", cards[0])
	}
}

func TestNewChart_NullHumidity(t *testing.T) {
	points := []weather.ForecastPoint{
		{Time: fixedNow, Temperature: types.NewTemperatureFromCelsius(9), HumidityPct: types.Known(70.0)},
		{Time: fixedNow.Add(time.Hour), Temperature: types.NewTemperatureFromCelsius(8)},
	}

	chart := NewChart(points)
	if len(chart.Labels) != 2 || len(chart.Temperatures) != 2 || len(chart.Humidity) != 2 {
		t.Fatalf("chart = %+v", chart)
	}
	if chart.Humidity[0] == nil || *chart.Humidity[0] != 70 {
		t.Errorf("Humidity[0] = %v, want 70", chart.Humidity[0])
	}
	if chart.Humidity[1] != nil {
		t.Errorf("Humidity[1] = %v, want nil", *chart.Humidity[1])
	}
}

func TestTemplates_Render(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() unexpected error = %v", err)
	}

	tests := []struct {
		name     string
		view     View
		contains []string
		excludes []string
	}{
		{
			name:     "city not found",
			view:     CityNotFoundView(Request{City: "Nowhere123xyz"}, false, "", fixedNow),
			contains: []string{"City not found: Nowhere123xyz"},
		},
		{
			name: "fallback conditions",
			view: NewView(Request{City: "Paris", Source: config.SourceWttr}, types.Location{ResolvedName: "Paris"},
				weather.Success(fallbackForecast()), fixedNow),
			contains: []string{"Partly cloudy", "wttr.in", "available with Open-Meteo", "Feels like 6.0°C",
				"Tomorrow", "Moderate rain", "10°/4°"},
		},
		{
			name: "fallback after primary failure warns",
			view: NewView(Request{City: "Paris", Source: config.SourceOpenMeteo}, types.Location{ResolvedName: "Paris"},
				weather.Success(fallbackForecast()), fixedNow),
			contains: []string{"⚠️ Open-Meteo is unavailable"},
			excludes: []string{"❌"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			page := NewPage(tt.view, []string{"London", "Paris"})
			if err := tmpl.ExecuteTemplate(&buf, PageTemplate, page); err != nil {
				t.Fatalf("ExecuteTemplate() unexpected error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("rendered page missing %q", want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(buf.String(), unwanted) {
					t.Errorf("rendered page contains %q", unwanted)
				}
			}
		})
	}
}

func TestNewPage_CustomCity(t *testing.T) {
	presets := []string{"London", "Paris"}

	if p := NewPage(View{Request: Request{City: "Paris"}}, presets); p.Custom != "" {
		t.Errorf("Custom = %q for a preset city, want empty", p.Custom)
	}
	p := NewPage(View{Request: Request{City: "Lyon", Source: config.SourceWttr}}, presets)
	if p.Custom != "Lyon" {
		t.Errorf("Custom = %q, want Lyon", p.Custom)
	}
	if p.Sources[0].Selected || !p.Sources[1].Selected {
		t.Errorf("Sources = %+v, want wttr selected", p.Sources)
	}
}

func tilesByLabel(tiles []Tile) map[string]Tile {
	m := make(map[string]Tile, len(tiles))
	for _, t := range tiles {
		m[t.Label] = t
	}
	return m
}
