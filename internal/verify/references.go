package verify

import "math"

// Reference is a published conversion value. Linear references carry a
// tolerance in percent; temperature references an absolute one in degrees.
type Reference struct {
	Category  string  `json:"category"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Input     float64 `json:"input"`
	Want      float64 `json:"want"`
	Tolerance float64 `json:"tolerance"`
	Absolute  bool    `json:"absolute,omitempty"`
}

func (r Reference) accepts(got float64) bool {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return false
	}
	if r.Absolute {
		return math.Abs(got-r.Want) <= r.Tolerance
	}
	if r.Want == 0 {
		return got == 0
	}
	return math.Abs(got-r.Want)/math.Abs(r.Want)*100 <= r.Tolerance
}

func pct(category, from, to string, in, want, tol float64) Reference {
	return Reference{Category: category, From: from, To: to, Input: in, Want: want, Tolerance: tol}
}

func deg(from, to string, in, want, tol float64) Reference {
	return Reference{Category: "temperature", From: from, To: to, Input: in, Want: want, Tolerance: tol, Absolute: true}
}

// References are the spot checks run by Run.
var References = []Reference{
	pct("length", "meter", "foot", 1, 3.28084, 0.01),
	pct("length", "kilometer", "mile", 1, 0.621371, 0.01),
	pct("length", "inch", "centimeter", 1, 2.54, 0.001),
	pct("length", "mile", "kilometer", 1, 1.60934, 0.01),
	pct("length", "foot", "meter", 1, 0.3048, 0.001),
	pct("length", "yard", "meter", 1, 0.9144, 0.001),
	pct("length", "nautical", "kilometer", 1, 1.852, 0.001),
	pct("length", "meter", "inch", 1, 39.3701, 0.01),

	pct("area", "sqmeter", "sqfoot", 1, 10.7639, 0.01),
	pct("area", "acre", "hectare", 1, 0.404686, 0.01),
	pct("area", "sqmile", "sqkilometer", 1, 2.58999, 0.01),
	pct("area", "hectare", "acre", 1, 2.47105, 0.01),
	pct("area", "sqfoot", "sqmeter", 1, 0.092903, 0.001),

	pct("volume", "liter", "usgallon", 1, 0.264172, 0.01),
	pct("volume", "usgallon", "liter", 1, 3.78541, 0.001),
	pct("volume", "cubicmeter", "liter", 1, 1000, 0.001),
	pct("volume", "liter", "milliliter", 1, 1000, 0.001),
	pct("volume", "usfloz", "milliliter", 1, 29.5735, 0.01),
	pct("volume", "uscup", "milliliter", 1, 236.588, 0.01),

	pct("weight", "kilogram", "pound", 1, 2.20462, 0.01),
	pct("weight", "pound", "kilogram", 1, 0.453592, 0.001),
	pct("weight", "kilogram", "gram", 1, 1000, 0.001),
	pct("weight", "ounce", "gram", 1, 28.3495, 0.01),
	pct("weight", "stone", "kilogram", 1, 6.35029, 0.001),
	pct("weight", "tonne", "kilogram", 1, 1000, 0.001),

	pct("time", "hour", "minute", 1, 60, 0.001),
	pct("time", "day", "hour", 1, 24, 0.001),
	pct("time", "year", "day", 1, 365.25, 0.1),
	pct("time", "week", "day", 1, 7, 0.001),
	pct("time", "minute", "second", 1, 60, 0.001),

	pct("speed", "kph", "mph", 1, 0.621371, 0.01),
	pct("speed", "mph", "kph", 1, 1.60934, 0.01),
	pct("speed", "mps", "kph", 1, 3.6, 0.01),
	pct("speed", "knot", "kph", 1, 1.852, 0.01),

	pct("pressure", "atm", "pascal", 1, 101325, 0.01),
	pct("pressure", "bar", "psi", 1, 14.5038, 0.01),
	pct("pressure", "psi", "pascal", 1, 6894.76, 0.01),
	pct("pressure", "atm", "psi", 1, 14.6959, 0.01),

	pct("energy", "joule", "calorie", 1, 0.239006, 0.01),
	pct("energy", "kwh", "joule", 1, 3600000, 0.001),
	pct("energy", "calorie", "joule", 1, 4.184, 0.001),
	pct("energy", "btu", "joule", 1, 1055.06, 0.001),

	deg("celsius", "fahrenheit", 0, 32, 0.001),
	deg("celsius", "fahrenheit", 100, 212, 0.001),
	deg("celsius", "kelvin", 0, 273.15, 0.001),
	deg("celsius", "kelvin", 100, 373.15, 0.001),
	deg("fahrenheit", "celsius", 32, 0, 0.001),
	deg("fahrenheit", "celsius", 212, 100, 0.001),
	deg("fahrenheit", "celsius", 98.6, 37, 0.01),
	deg("kelvin", "celsius", 273.15, 0, 0.001),
	deg("kelvin", "fahrenheit", 373.15, 212, 0.001),
	deg("celsius", "rankine", 0, 491.67, 0.01),
	deg("celsius", "reaumur", 100, 80, 0.001),
	deg("reaumur", "celsius", 80, 100, 0.001),
}
