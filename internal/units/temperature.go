package units

import "math"

// convertTemperature pivots through Celsius. Unknown scales yield NaN.
func convertTemperature(value float64, fromID, toID string) float64 {
	c, ok := toCelsius(value, fromID)
	if !ok {
		return math.NaN()
	}
	if fromID == toID {
		return value
	}
	v, ok := fromCelsius(c, toID)
	if !ok {
		return math.NaN()
	}
	return v
}

func toCelsius(v float64, scale string) (float64, bool) {
	switch scale {
	case "celsius":
		return v, true
	case "fahrenheit":
		return (v - 32) * 5 / 9, true
	case "kelvin":
		return v - 273.15, true
	case "rankine":
		return (v - 491.67) * 5 / 9, true
	case "reaumur":
		return v * 5 / 4, true
	}
	return 0, false
}

func fromCelsius(c float64, scale string) (float64, bool) {
	switch scale {
	case "celsius":
		return c, true
	case "fahrenheit":
		return c*9/5 + 32, true
	case "kelvin":
		return c + 273.15, true
	case "rankine":
		return (c + 273.15) * 9 / 5, true
	case "reaumur":
		return c * 4 / 5, true
	}
	return 0, false
}
