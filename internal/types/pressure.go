package types

const InHgToHPa = 33.8639

type Pressure struct {
	HPa  float64 `json:"hPa"`
	InHg float64 `json:"inHg"`
}

func NewPressureFromHPa(hPa float64) Pressure {
	return Pressure{
		HPa:  hPa,
		InHg: hPa / InHgToHPa,
	}
}

func NewPressureFromInHg(inHg float64) Pressure {
	return Pressure{
		HPa:  inHg * InHgToHPa,
		InHg: inHg,
	}
}
