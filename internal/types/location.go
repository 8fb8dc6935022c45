package types

// Location is a geocoded city. It is built once per lookup and never mutated.
type Location struct {
	Query        string `json:"query"`
	Coordinates  Coords `json:"coordinates"`
	ResolvedName string `json:"resolvedName"`
	Country      string `json:"country,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
}

// DisplayName prefers the resolved name and falls back to what the user typed
func (l Location) DisplayName() string {
	if l.ResolvedName != "" {
		return l.ResolvedName
	}
	return l.Query
}
