package types

import "fmt"

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the coordinates fall within -90..90 and -180..180
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coords) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
