package weather

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/upstream"
)

const (
	// HourlyWindow is the length of the chart series
	HourlyWindow = 24
	// DailyCards is the number of forecast cards
	DailyCards = 5

	isoMinute = "2006-01-02T15:04"
	isoDate   = "2006-01-02"
)

// mapForecastAPIResponse validates an Open-Meteo payload and normalizes it to metric
func mapForecastAPIResponse(resp *openmeteo.ForecastAPIResponse) (*Forecast, error) {
	if err := validateForecast(resp); err != nil {
		return nil, upstream.SchemaError(err)
	}

	units, err := newUnitSet(resp)
	if err != nil {
		return nil, upstream.SchemaError(err)
	}

	loc := loadLocation(resp.Timezone)

	now, err := time.ParseInLocation(isoMinute, resp.Current.Time, loc)
	if err != nil {
		return nil, upstream.SchemaError(fmt.Errorf("invalid current.time %q: %w", resp.Current.Time, err))
	}

	current := mapCurrent(resp.Current, units, now)

	daily, err := mapDaily(resp.Daily, units, loc)
	if err != nil {
		return nil, upstream.SchemaError(err)
	}

	// The first daily row is today in the location's zone
	today := resp.Daily
	current.Sunrise = parseOptionalTime(first(today.Sunrise), loc)
	current.Sunset = parseOptionalTime(first(today.Sunset), loc)
	if len(today.UvIndexMax) > 0 && today.UvIndexMax[0] != nil {
		current.UVIndex = types.Known(*today.UvIndexMax[0])
	}
	current.TodayHigh = types.Known(daily[0].High)
	current.TodayLow = types.Known(daily[0].Low)

	hourly, err := mapHourly(resp.Hourly, units, loc, now)
	if err != nil {
		return nil, upstream.SchemaError(err)
	}

	return &Forecast{
		Current:  current,
		Hourly:   hourly,
		Daily:    daily,
		Timezone: resp.Timezone,
	}, nil
}

func validateForecast(resp *openmeteo.ForecastAPIResponse) error {
	if resp == nil {
		return errors.New("empty forecast response")
	}
	if resp.Current == nil {
		return errors.New("current block missing")
	}
	if resp.Current.Temperature2M == nil {
		return errors.New("current.temperature_2m missing")
	}

	h := resp.Hourly
	if h == nil || len(h.Time) == 0 {
		return errors.New("hourly block missing")
	}
	if len(h.Temperature2M) != len(h.Time) || len(h.RelativeHumidity2M) != len(h.Time) {
		return fmt.Errorf("hourly arrays not aligned: time=%d temperature=%d humidity=%d",
			len(h.Time), len(h.Temperature2M), len(h.RelativeHumidity2M))
	}

	d := resp.Daily
	if d == nil {
		return errors.New("daily block missing")
	}
	if len(d.Temperature2MMax) != len(d.Time) || len(d.Temperature2MMin) != len(d.Time) || len(d.WeatherCode) != len(d.Time) {
		return fmt.Errorf("daily arrays not aligned: time=%d max=%d min=%d code=%d",
			len(d.Time), len(d.Temperature2MMax), len(d.Temperature2MMin), len(d.WeatherCode))
	}
	if len(d.Time) < DailyCards {
		return fmt.Errorf("daily block has %d entries, need at least %d", len(d.Time), DailyCards)
	}

	return nil
}

func mapCurrent(c *openmeteo.Current, units unitSet, observed time.Time) CurrentConditions {
	current := CurrentConditions{
		Temperature: units.temperature(*c.Temperature2M),
		Condition:   types.NewWeather(int(types.UnknownWeather)),
		ObservedAt:  types.Known(observed),
	}

	if c.ApparentTemperature != nil {
		current.FeelsLike = types.Known(units.temperature(*c.ApparentTemperature))
	}
	if c.RelativeHumidity2M != nil {
		current.HumidityPct = types.Known(*c.RelativeHumidity2M)
	}
	if c.PressureMsl != nil {
		current.Pressure = types.Known(units.pressure(*c.PressureMsl))
	}
	if c.WindSpeed10M != nil {
		current.WindSpeed = types.Known(units.wind(*c.WindSpeed10M))
	}
	if c.WindDirection10M != nil {
		current.WindDirection = types.Known(types.NewWindDirection(*c.WindDirection10M))
	}
	if c.WeatherCode != nil {
		current.Condition = types.NewWeather(*c.WeatherCode)
	}
	if c.CloudCover != nil {
		current.CloudCoverPct = types.Known(*c.CloudCover)
	}
	if c.Visibility != nil {
		current.VisibilityM = types.Known(units.visibility(*c.Visibility))
	}

	return current
}

// mapHourly returns up to 24 points starting at the hour containing now.
// Hours with a null temperature are skipped; source order is kept.
func mapHourly(h *openmeteo.Hourly, units unitSet, loc *time.Location, now time.Time) ([]ForecastPoint, error) {
	times := make([]time.Time, len(h.Time))
	for i, raw := range h.Time {
		t, err := time.ParseInLocation(isoMinute, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid hourly.time[%d] %q: %w", i, raw, err)
		}
		times[i] = t
	}

	start := 0
	for i, t := range times {
		if t.After(now) {
			break
		}
		start = i
	}

	points := make([]ForecastPoint, 0, HourlyWindow)
	for i := start; i < len(times) && len(points) < HourlyWindow; i++ {
		if h.Temperature2M[i] == nil {
			continue
		}
		point := ForecastPoint{
			Time:        times[i],
			Temperature: units.hourlyTemperature(*h.Temperature2M[i]),
		}
		if h.RelativeHumidity2M[i] != nil {
			point.HumidityPct = types.Known(*h.RelativeHumidity2M[i])
		}
		points = append(points, point)
	}

	return points, nil
}

// mapDaily returns exactly five cards in ascending date order
func mapDaily(d *openmeteo.Daily, units unitSet, loc *time.Location) ([]DailyForecast, error) {
	days := make([]DailyForecast, 0, len(d.Time))
	for i, raw := range d.Time {
		date, err := time.ParseInLocation(isoDate, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid daily.time[%d] %q: %w", i, raw, err)
		}
		if d.Temperature2MMax[i] == nil || d.Temperature2MMin[i] == nil {
			continue
		}

		condition := types.NewWeather(int(types.UnknownWeather))
		if d.WeatherCode[i] != nil {
			condition = types.NewWeather(*d.WeatherCode[i])
		}

		days = append(days, DailyForecast{
			Date:      date,
			High:      units.dailyTemperature(*d.Temperature2MMax[i]),
			Low:       units.dailyTemperature(*d.Temperature2MMin[i]),
			Condition: condition,
		})
	}

	if len(days) < DailyCards {
		return nil, fmt.Errorf("daily block has %d complete entries, need %d", len(days), DailyCards)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days[:DailyCards:DailyCards], nil
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseOptionalTime(raw string, loc *time.Location) types.Optional[time.Time] {
	if raw == "" {
		return types.Unknown[time.Time]()
	}
	t, err := time.ParseInLocation(isoMinute, raw, loc)
	if err != nil {
		return types.Unknown[time.Time]()
	}
	return types.Known(t)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
