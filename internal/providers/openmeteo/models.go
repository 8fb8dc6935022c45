package openmeteo

// ForecastAPIResponse is the subset of the forecast payload the dashboard requests
type ForecastAPIResponse struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	GenerationtimeMs     float64       `json:"generationtime_ms"`
	UtcOffsetSeconds     int           `json:"utc_offset_seconds"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	Elevation            float64       `json:"elevation"`
	CurrentUnits         *CurrentUnits `json:"current_units"`
	Current              *Current      `json:"current"`
	HourlyUnits          *HourlyUnits  `json:"hourly_units"`
	Hourly               *Hourly       `json:"hourly"`
	DailyUnits           *DailyUnits   `json:"daily_units"`
	Daily                *Daily        `json:"daily"`
}

type CurrentUnits struct {
	Time                string `json:"time"`
	Temperature2M       string `json:"temperature_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	RelativeHumidity2M  string `json:"relative_humidity_2m"`
	PressureMsl         string `json:"pressure_msl"`
	WindSpeed10M        string `json:"wind_speed_10m"`
	Visibility          string `json:"visibility"`
}

// Current uses pointers so an omitted or null reading stays distinguishable from zero
type Current struct {
	Time                string   `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2M       *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity2M  *float64 `json:"relative_humidity_2m"`
	PressureMsl         *float64 `json:"pressure_msl"`
	WindSpeed10M        *float64 `json:"wind_speed_10m"`
	WindDirection10M    *float64 `json:"wind_direction_10m"`
	WeatherCode         *int     `json:"weather_code"`
	CloudCover          *float64 `json:"cloud_cover"`
	Visibility          *float64 `json:"visibility"`
	IsDay               *int     `json:"is_day"`
}

type HourlyUnits struct {
	Time               string `json:"time"`
	Temperature2M      string `json:"temperature_2m"`
	RelativeHumidity2M string `json:"relative_humidity_2m"`
}

type Hourly struct {
	Time               []string   `json:"time"`
	Temperature2M      []*float64 `json:"temperature_2m"`
	RelativeHumidity2M []*float64 `json:"relative_humidity_2m"`
	WeatherCode        []*int     `json:"weather_code"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2MMax string `json:"temperature_2m_max"`
	Temperature2MMin string `json:"temperature_2m_min"`
}

type Daily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
	Sunrise          []string   `json:"sunrise"`
	Sunset           []string   `json:"sunset"`
	UvIndexMax       []*float64 `json:"uv_index_max"`
}

// GeocodingAPIResponse is the payload of the geocoding search endpoint.
// Results is omitted entirely when nothing matches.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}
