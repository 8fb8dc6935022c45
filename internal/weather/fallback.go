package weather

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/providers/wttr"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/upstream"
)

const (
	// OutlookDays is how many wttr.in days are shown as cards
	OutlookDays = 3
	// middaySlot is the 12:00 entry of wttr.in's three-hourly list
	middaySlot = 4
)

// mapFallbackResponse builds current conditions from a wttr.in summary.
// Hourly and daily stay empty: the fallback tier has no series.
func mapFallbackResponse(resp *wttr.APIResponse, loc types.Location, tz timezone.Service) (*Forecast, error) {
	if resp == nil || len(resp.CurrentCondition) == 0 {
		return nil, upstream.SchemaError(errors.New("current_condition missing"))
	}
	cc := resp.CurrentCondition[0]

	tempC, ok := wttr.ParseNumber(cc.TempC)
	if !ok {
		return nil, upstream.SchemaError(errors.New("current_condition.temp_C missing"))
	}

	current := CurrentConditions{
		Temperature: types.NewTemperatureFromCelsius(tempC),
		Condition:   fallbackCondition(cc),
	}

	if v, ok := wttr.ParseNumber(cc.FeelsLikeC); ok {
		current.FeelsLike = types.Known(types.NewTemperatureFromCelsius(v))
	}
	if v, ok := wttr.ParseNumber(cc.Humidity); ok {
		current.HumidityPct = types.Known(v)
	}
	if v, ok := wttr.ParseNumber(cc.Pressure); ok {
		current.Pressure = types.Known(types.NewPressureFromHPa(v))
	}
	if v, ok := wttr.ParseNumber(cc.WindspeedKmph); ok {
		current.WindSpeed = types.Known(types.NewWindSpeedFromKph(v))
	}
	if v, ok := wttr.ParseNumber(cc.WinddirDegree); ok {
		current.WindDirection = types.Known(types.NewWindDirection(v))
	}
	if v, ok := wttr.ParseNumber(cc.Visibility); ok {
		current.VisibilityM = types.Known(v * 1000)
	}
	if v, ok := wttr.ParseNumber(cc.Cloudcover); ok {
		current.CloudCoverPct = types.Known(v)
	}
	if v, ok := wttr.ParseNumber(cc.UvIndex); ok {
		current.UVIndex = types.Known(v)
	}

	zone := fallbackZone(resp, loc, tz)

	if date, clock, ok := strings.Cut(strings.TrimSpace(cc.LocalObsDateTime), " "); ok && zone != "" {
		if t, err := timezone.ParseInZone(zone, date, clock); err == nil {
			current.ObservedAt = types.Known(t)
		}
	}

	if len(resp.Weather) > 0 {
		today := resp.Weather[0]
		if v, ok := wttr.ParseNumber(today.MaxtempC); ok {
			current.TodayHigh = types.Known(types.NewTemperatureFromCelsius(v))
		}
		if v, ok := wttr.ParseNumber(today.MintempC); ok {
			current.TodayLow = types.Known(types.NewTemperatureFromCelsius(v))
		}
		if !current.UVIndex.Known {
			if v, ok := wttr.ParseNumber(today.UvIndex); ok {
				current.UVIndex = types.Known(v)
			}
		}
		if len(today.Astronomy) > 0 && zone != "" {
			current.Sunrise = localClock(zone, today.Date, today.Astronomy[0].Sunrise)
			current.Sunset = localClock(zone, today.Date, today.Astronomy[0].Sunset)
		}
	}

	return &Forecast{
		Current:  current,
		Hourly:   []ForecastPoint{},
		Daily:    []DailyForecast{},
		Outlook:  mapOutlook(resp.Weather, zone),
		Timezone: zone,
	}, nil
}

// mapOutlook keeps up to three days in source order. Days with an
// unreadable date are dropped; missing temperatures stay unknown.
func mapOutlook(days []wttr.DailyWeather, zone string) []OutlookDay {
	loc := loadLocation(zone)
	outlook := make([]OutlookDay, 0, OutlookDays)
	for _, d := range days {
		if len(outlook) == OutlookDays {
			break
		}
		date, err := time.ParseInLocation(isoDate, strings.TrimSpace(d.Date), loc)
		if err != nil {
			continue
		}

		day := OutlookDay{
			Date:      date,
			Condition: middayCondition(d.Hourly),
		}
		if v, ok := wttr.ParseNumber(d.MaxtempC); ok {
			day.High = types.Known(types.NewTemperatureFromCelsius(v))
		}
		if v, ok := wttr.ParseNumber(d.MintempC); ok {
			day.Low = types.Known(types.NewTemperatureFromCelsius(v))
		}
		outlook = append(outlook, day)
	}
	return outlook
}

// middayCondition reads the noon slot, or the latest slot when the day is shorter
func middayCondition(hourly []wttr.HourlyWeather) types.Weather {
	if len(hourly) == 0 {
		return types.NewWeather(int(types.UnknownWeather))
	}
	h := hourly[min(middaySlot, len(hourly)-1)]
	return conditionFromWWO(h.WeatherCode, h.WeatherDesc)
}

func fallbackCondition(cc wttr.CurrentCondition) types.Weather {
	return conditionFromWWO(cc.WeatherCode, cc.WeatherDesc)
}

func conditionFromWWO(rawCode string, desc []wttr.TextValue) types.Weather {
	code := types.UnknownWeather
	if wwo, err := strconv.Atoi(strings.TrimSpace(rawCode)); err == nil {
		code = types.WeatherCodeFromWWO(wwo)
	}
	return types.NewWeatherFromText(code, wttr.FirstValue(desc))
}

// fallbackZone prefers the geocoded zone, then the zone under wttr.in's
// nearest area, then the zone under the geocoded coordinates
func fallbackZone(resp *wttr.APIResponse, loc types.Location, tz timezone.Service) string {
	if loc.Timezone != "" {
		return loc.Timezone
	}
	if tz == nil {
		return ""
	}
	if len(resp.NearestArea) > 0 {
		lat, latOK := wttr.ParseNumber(resp.NearestArea[0].Latitude)
		lon, lonOK := wttr.ParseNumber(resp.NearestArea[0].Longitude)
		if latOK && lonOK {
			if zone, err := tz.GetTimezone(lat, lon); err == nil {
				return zone
			}
		}
	}
	if zone, err := tz.GetTimezone(loc.Coordinates.Latitude, loc.Coordinates.Longitude); err == nil {
		return zone
	}
	return ""
}

// localClock reads wttr.in's "06:45 AM"; polar markers such as "No sunrise" stay unknown
func localClock(zone, date, clock string) types.Optional[time.Time] {
	t, err := timezone.ParseInZone(zone, date, clock)
	if err != nil {
		return types.Unknown[time.Time]()
	}
	return types.Known(t)
}
