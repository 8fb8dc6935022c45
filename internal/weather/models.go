package weather

import (
	"time"

	"weather-dashboard/internal/types"
)

// Source tags which tier of the fetch chain produced a forecast
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Status is the tag of a FetchResult
type Status string

const (
	StatusSuccess     Status = "success"
	StatusUnavailable Status = "unavailable"
)

// CurrentConditions is normalized to metric. Readings a source did not
// report are Unknown, never zero.
type CurrentConditions struct {
	Temperature   types.Temperature                   `json:"temperature"`
	FeelsLike     types.Optional[types.Temperature]   `json:"feelsLike"`
	HumidityPct   types.Optional[float64]             `json:"humidityPct"`
	Pressure      types.Optional[types.Pressure]      `json:"pressure"`
	WindSpeed     types.Optional[types.WindSpeed]     `json:"windSpeed"`
	WindDirection types.Optional[types.WindDirection] `json:"windDirection"`
	Condition     types.Weather                       `json:"condition"`
	Sunrise       types.Optional[time.Time]           `json:"sunrise"`
	Sunset        types.Optional[time.Time]           `json:"sunset"`
	VisibilityM   types.Optional[float64]             `json:"visibilityM"`
	CloudCoverPct types.Optional[float64]             `json:"cloudCoverPct"`
	UVIndex       types.Optional[float64]             `json:"uvIndex"`
	TodayHigh     types.Optional[types.Temperature]   `json:"todayHigh"`
	TodayLow      types.Optional[types.Temperature]   `json:"todayLow"`
	ObservedAt    types.Optional[time.Time]           `json:"observedAt"`
}

// ForecastPoint is one hour of the 24-hour series
type ForecastPoint struct {
	Time        time.Time               `json:"time"`
	Temperature types.Temperature       `json:"temperature"`
	HumidityPct types.Optional[float64] `json:"humidityPct"`
}

// DailyForecast is one forecast card
type DailyForecast struct {
	Date      time.Time         `json:"date"`
	High      types.Temperature `json:"high"`
	Low       types.Temperature `json:"low"`
	Condition types.Weather     `json:"condition"`
}

// OutlookDay is one day of wttr.in's short outlook. It is display-only and
// never feeds Daily.
type OutlookDay struct {
	Date      time.Time                         `json:"date"`
	High      types.Optional[types.Temperature] `json:"high"`
	Low       types.Optional[types.Temperature] `json:"low"`
	Condition types.Weather                     `json:"condition"`
}

// Forecast is the successful outcome of a fetch. Fallback forecasts carry
// empty, non-nil Hourly and Daily slices; their days go to Outlook.
type Forecast struct {
	Location  types.Location    `json:"location"`
	Current   CurrentConditions `json:"current"`
	Hourly    []ForecastPoint   `json:"hourly"`
	Daily     []DailyForecast   `json:"daily"`
	Outlook   []OutlookDay      `json:"outlook,omitempty"`
	Source    Source            `json:"source"`
	Provider  string            `json:"provider"`
	Timezone  string            `json:"timezone,omitempty"`
	FetchedAt time.Time         `json:"fetchedAt"`
}

// FetchResult is either a Forecast or the reason none could be produced
type FetchResult struct {
	Status   Status    `json:"status"`
	Forecast *Forecast `json:"forecast,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

func Success(f *Forecast) FetchResult {
	return FetchResult{Status: StatusSuccess, Forecast: f}
}

func Unavailable(reason string) FetchResult {
	return FetchResult{Status: StatusUnavailable, Reason: reason}
}

// OK reports whether the result carries a forecast
func (r FetchResult) OK() bool {
	return r.Status == StatusSuccess && r.Forecast != nil
}
