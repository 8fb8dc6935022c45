package types

const MphToKph = 1.60934

// Open-Meteo reports wind in m/s when wind_speed_unit=ms
const MsToKph = 3.6

const KnotsToKph = 1.852

type WindSpeed struct {
	Kph float64 `json:"kph"`
	Mph float64 `json:"mph"`
}

type WindDirection struct {
	Degrees  float64 `json:"degrees"`
	Cardinal string  `json:"cardinal"`
}

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func NewWindSpeedFromMph(speedInMph float64) WindSpeed {
	return WindSpeed{
		Mph: speedInMph,
		Kph: speedInMph * MphToKph,
	}
}

func NewWindSpeedFromKph(speedInKph float64) WindSpeed {
	return WindSpeed{
		Kph: speedInKph,
		Mph: speedInKph / MphToKph,
	}
}

func NewWindSpeedFromMs(speedInMs float64) WindSpeed {
	return NewWindSpeedFromKph(speedInMs * MsToKph)
}

func NewWindSpeedFromKnots(speedInKnots float64) WindSpeed {
	return NewWindSpeedFromKph(speedInKnots * KnotsToKph)
}

func NewWindDirection(degrees float64) WindDirection {
	if degrees < 0 || degrees >= 360 {
		return WindDirection{
			Degrees:  -1,
			Cardinal: "Unknown",
		}
	}

	direction := (degrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16

	return WindDirection{
		Degrees:  degrees,
		Cardinal: cardinals[index],
	}
}
