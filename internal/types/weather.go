package types

import "strconv"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather represents weather conditions with a code and description
type Weather struct {
	Code        WeatherCode `json:"code"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

// Weather code constants
const (
	UnknownWeather               WeatherCode = -1
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

const defaultIcon = "🌤️"

// weatherDescriptions maps weather codes to their descriptions
var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                     "Clear sky",
	MainlyClear:                  "Mainly clear",
	PartlyCloudy:                 "Partly cloudy",
	Overcast:                     "Overcast",
	Fog:                          "Fog",
	DepositingRimeFog:            "Depositing rime fog",
	DrizzleLight:                 "Light drizzle",
	DrizzleModerate:              "Moderate drizzle",
	DrizzleDense:                 "Dense drizzle",
	FreezingDrizzleLight:         "Light freezing drizzle",
	FreezingDrizzleDense:         "Dense freezing drizzle",
	RainSlight:                   "Slight rain",
	RainModerate:                 "Moderate rain",
	RainHeavy:                    "Heavy rain",
	FreezingRainLight:            "Light freezing rain",
	FreezingRainHeavy:            "Heavy freezing rain",
	SnowFallSlight:               "Slight snow fall",
	SnowFallModerate:             "Moderate snow fall",
	SnowFallHeavy:                "Heavy snow fall",
	SnowGrains:                   "Snow grains",
	RainShowersSlight:            "Slight rain showers",
	RainShowersModerate:          "Moderate rain showers",
	RainShowersViolent:           "Violent rain showers",
	SnowShowersSlight:            "Slight snow showers",
	SnowShowersHeavy:             "Heavy snow showers",
	ThunderstormSlightOrModerate: "Thunderstorm",
	ThunderstormWithSlightHail:   "Thunderstorm with slight hail",
	ThunderstormWithHeavyHail:    "Thunderstorm with heavy hail",
}

var weatherIcons = map[WeatherCode]string{
	ClearSky:                     "☀️",
	MainlyClear:                  "🌤️",
	PartlyCloudy:                 "⛅",
	Overcast:                     "☁️",
	Fog:                          "🌫️",
	DepositingRimeFog:            "🌫️",
	DrizzleLight:                 "🌦️",
	DrizzleModerate:              "🌦️",
	DrizzleDense:                 "🌧️",
	FreezingDrizzleLight:         "🌧️",
	FreezingDrizzleDense:         "🌧️",
	RainSlight:                   "🌧️",
	RainModerate:                 "🌧️",
	RainHeavy:                    "🌧️",
	FreezingRainLight:            "🌧️",
	FreezingRainHeavy:            "🌧️",
	SnowFallSlight:               "❄️",
	SnowFallModerate:             "❄️",
	SnowFallHeavy:                "🌨️",
	SnowGrains:                   "❄️",
	RainShowersSlight:            "🌦️",
	RainShowersModerate:          "🌧️",
	RainShowersViolent:           "🌧️",
	SnowShowersSlight:            "🌨️",
	SnowShowersHeavy:             "🌨️",
	ThunderstormSlightOrModerate: "⛈️",
	ThunderstormWithSlightHail:   "⛈️",
	ThunderstormWithHeavyHail:    "⛈️",
}

// String returns the code as the decimal string used in payloads
func (c WeatherCode) String() string {
	return strconv.Itoa(int(c))
}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code WeatherCode) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// GetWeatherIcon returns an emoji for the code, with a neutral default
func GetWeatherIcon(code WeatherCode) string {
	if icon, ok := weatherIcons[code]; ok {
		return icon
	}
	return defaultIcon
}

// NewWeather creates a Weather instance from a WMO weather code
func NewWeather(code int) Weather {
	c := WeatherCode(code)
	return Weather{
		Code:        c,
		Description: GetWeatherDescription(c),
		Icon:        GetWeatherIcon(c),
	}
}

// NewWeatherFromText keeps a provider's own description and maps its
// code to the nearest WMO code when one is known
func NewWeatherFromText(code WeatherCode, description string) Weather {
	w := Weather{
		Code:        code,
		Description: description,
		Icon:        GetWeatherIcon(code),
	}
	if w.Description == "" {
		w.Description = GetWeatherDescription(code)
	}
	return w
}
