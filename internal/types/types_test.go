package types

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewTemperatureFromFahrenheit(t *testing.T) {
	tests := []struct {
		name       string
		fahrenheit float64
		celsius    float64
	}{
		{name: "freezing", fahrenheit: 32, celsius: 0},
		{name: "boiling", fahrenheit: 212, celsius: 100},
		{name: "crossover", fahrenheit: -40, celsius: -40},
		{name: "mild day", fahrenheit: 68.5, celsius: 20.28},
		{name: "body temperature", fahrenheit: 98.6, celsius: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTemperatureFromFahrenheit(tt.fahrenheit)
			if math.Abs(got.Celsius-tt.celsius) > 0.1 {
				t.Errorf("Celsius = %v, want %v (±0.1)", got.Celsius, tt.celsius)
			}
			if got.Fahrenheit != tt.fahrenheit {
				t.Errorf("Fahrenheit = %v, want %v", got.Fahrenheit, tt.fahrenheit)
			}
		})
	}
}

func TestNewTemperatureFromCelsius_RoundTrip(t *testing.T) {
	for _, c := range []float64{-20, -3.3, 0, 12.7, 35, 50} {
		back := NewTemperatureFromFahrenheit(NewTemperatureFromCelsius(c).Fahrenheit)
		if math.Abs(back.Celsius-c) > 1e-9 {
			t.Errorf("round trip of %v°C = %v°C", c, back.Celsius)
		}
	}
}

func TestWindSpeedConversions(t *testing.T) {
	if got := NewWindSpeedFromMph(10).Kph; math.Abs(got-16.0934) > 1e-6 {
		t.Errorf("NewWindSpeedFromMph(10).Kph = %v, want 16.0934", got)
	}
	if got := NewWindSpeedFromMs(10).Kph; math.Abs(got-36) > 1e-9 {
		t.Errorf("NewWindSpeedFromMs(10).Kph = %v, want 36", got)
	}
	if got := NewWindSpeedFromKph(16.0934).Mph; math.Abs(got-10) > 1e-6 {
		t.Errorf("NewWindSpeedFromKph(16.0934).Mph = %v, want 10", got)
	}
}

func TestNewWindDirection(t *testing.T) {
	tests := []struct {
		degrees  float64
		expected string
	}{
		{0, "N"},
		{11, "N"},
		{12, "NNE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{349, "N"},
		{-5, "Unknown"},
		{360, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := NewWindDirection(tt.degrees)
			if got.Cardinal != tt.expected {
				t.Errorf("NewWindDirection(%v).Cardinal = %q, want %q", tt.degrees, got.Cardinal, tt.expected)
			}
		})
	}
}

func TestNewPressureFromInHg(t *testing.T) {
	got := NewPressureFromInHg(29.92)
	if math.Abs(got.HPa-1013.2) > 0.1 {
		t.Errorf("NewPressureFromInHg(29.92).HPa = %v, want ~1013.2", got.HPa)
	}
}

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{name: "paris", coords: NewCoords(48.8566, 2.3522), want: true},
		{name: "south pole", coords: NewCoords(-90, 0), want: true},
		{name: "date line", coords: NewCoords(0, 180), want: true},
		{name: "latitude too high", coords: NewCoords(90.1, 0), want: false},
		{name: "longitude too low", coords: NewCoords(0, -180.5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptional_JSON(t *testing.T) {
	type payload struct {
		Visibility Optional[float64] `json:"visibility"`
		UVIndex    Optional[int]     `json:"uvIndex"`
	}

	data, err := json.Marshal(payload{Visibility: Known(0.0)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"visibility":0,"uvIndex":null}` {
		t.Errorf("Marshal() = %s", data)
	}

	var decoded payload
	if err := json.Unmarshal([]byte(`{"visibility":null,"uvIndex":4}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Visibility.Known {
		t.Error("Visibility should be unknown")
	}
	if v, ok := decoded.UVIndex.Get(); !ok || v != 4 {
		t.Errorf("UVIndex = %v/%v, want 4/true", v, ok)
	}
	if got := decoded.Visibility.Or(-1); got != -1 {
		t.Errorf("Or(-1) = %v, want -1", got)
	}
}

func TestNewWeather(t *testing.T) {
	tests := []struct {
		code        int
		description string
		icon        string
	}{
		{0, "Clear sky", "☀️"},
		{63, "Moderate rain", "🌧️"},
		{95, "Thunderstorm", "⛈️"},
		{42, "Unknown", "🌤️"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := NewWeather(tt.code)
			if got.Description != tt.description {
				t.Errorf("Description = %q, want %q", got.Description, tt.description)
			}
			if got.Icon != tt.icon {
				t.Errorf("Icon = %q, want %q", got.Icon, tt.icon)
			}
		})
	}
}

func TestWeatherCodeFromWWO(t *testing.T) {
	tests := []struct {
		wwo  int
		want WeatherCode
	}{
		{113, ClearSky},
		{116, PartlyCloudy},
		{296, RainSlight},
		{338, SnowFallHeavy},
		{389, ThunderstormSlightOrModerate},
		{999, UnknownWeather},
	}

	for _, tt := range tests {
		if got := WeatherCodeFromWWO(tt.wwo); got != tt.want {
			t.Errorf("WeatherCodeFromWWO(%d) = %d, want %d", tt.wwo, got, tt.want)
		}
	}
}

func TestNewWeatherFromText(t *testing.T) {
	got := NewWeatherFromText(WeatherCodeFromWWO(116), "Partly cloudy ")
	if got.Code != PartlyCloudy || got.Icon != "⛅" {
		t.Errorf("NewWeatherFromText() = %+v", got)
	}

	fallback := NewWeatherFromText(RainHeavy, "")
	if fallback.Description != "Heavy rain" {
		t.Errorf("empty description should fall back to WMO text, got %q", fallback.Description)
	}
}
