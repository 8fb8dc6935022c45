package weather

import (
	"fmt"
	"strings"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/types"
)

const feetToMeters = 0.3048

// unitSet converts payload readings to metric using the units the payload declares
type unitSet struct {
	temperature       func(float64) types.Temperature
	hourlyTemperature func(float64) types.Temperature
	dailyTemperature  func(float64) types.Temperature
	wind              func(float64) types.WindSpeed
	pressure          func(float64) types.Pressure
	visibility        func(float64) float64
}

func newUnitSet(resp *openmeteo.ForecastAPIResponse) (unitSet, error) {
	var currentUnits openmeteo.CurrentUnits
	if resp.CurrentUnits != nil {
		currentUnits = *resp.CurrentUnits
	}

	var set unitSet
	var err error

	if set.temperature, err = temperatureUnit(currentUnits.Temperature2M); err != nil {
		return unitSet{}, fmt.Errorf("current_units: %w", err)
	}

	set.hourlyTemperature = set.temperature
	if resp.HourlyUnits != nil {
		if set.hourlyTemperature, err = temperatureUnit(resp.HourlyUnits.Temperature2M); err != nil {
			return unitSet{}, fmt.Errorf("hourly_units: %w", err)
		}
	}

	set.dailyTemperature = set.temperature
	if resp.DailyUnits != nil {
		if set.dailyTemperature, err = temperatureUnit(resp.DailyUnits.Temperature2MMax); err != nil {
			return unitSet{}, fmt.Errorf("daily_units: %w", err)
		}
	}

	if set.wind, err = windUnit(currentUnits.WindSpeed10M); err != nil {
		return unitSet{}, fmt.Errorf("current_units: %w", err)
	}
	if set.pressure, err = pressureUnit(currentUnits.PressureMsl); err != nil {
		return unitSet{}, fmt.Errorf("current_units: %w", err)
	}
	if set.visibility, err = lengthUnit(currentUnits.Visibility); err != nil {
		return unitSet{}, fmt.Errorf("current_units: %w", err)
	}

	return set, nil
}

// An empty unit string means the API default, which is metric
func temperatureUnit(unit string) (func(float64) types.Temperature, error) {
	switch strings.TrimSpace(unit) {
	case "", "°C", "C":
		return types.NewTemperatureFromCelsius, nil
	case "°F", "F":
		return types.NewTemperatureFromFahrenheit, nil
	default:
		return nil, fmt.Errorf("unsupported temperature unit %q", unit)
	}
}

func windUnit(unit string) (func(float64) types.WindSpeed, error) {
	switch strings.TrimSpace(unit) {
	case "", "km/h":
		return types.NewWindSpeedFromKph, nil
	case "mp/h", "mph":
		return types.NewWindSpeedFromMph, nil
	case "m/s":
		return types.NewWindSpeedFromMs, nil
	case "kn":
		return types.NewWindSpeedFromKnots, nil
	default:
		return nil, fmt.Errorf("unsupported wind speed unit %q", unit)
	}
}

func pressureUnit(unit string) (func(float64) types.Pressure, error) {
	switch strings.TrimSpace(unit) {
	case "", "hPa":
		return types.NewPressureFromHPa, nil
	case "inHg":
		return types.NewPressureFromInHg, nil
	default:
		return nil, fmt.Errorf("unsupported pressure unit %q", unit)
	}
}

func lengthUnit(unit string) (func(float64) float64, error) {
	switch strings.TrimSpace(unit) {
	case "", "m":
		return func(v float64) float64 { return v }, nil
	case "ft":
		return func(v float64) float64 { return v * feetToMeters }, nil
	default:
		return nil, fmt.Errorf("unsupported length unit %q", unit)
	}
}
