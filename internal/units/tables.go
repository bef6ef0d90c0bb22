package units

// categories is the static unit configuration, in navigation order.
// The first unit of every linear category is its base unit.
var categories = []Category{
	{
		ID: "length", Name: "Length", Kind: Linear,
		Units: []Unit{
			{ID: "meter", Label: "Meter (m)", Name: "Meter", Symbol: "m", Factor: 1},
			{ID: "kilometer", Label: "Kilometer (km)", Name: "Kilometer", Symbol: "km", Factor: 1000},
			{ID: "centimeter", Label: "Centimeter (cm)", Name: "Centimeter", Symbol: "cm", Factor: 0.01},
			{ID: "millimeter", Label: "Millimeter (mm)", Name: "Millimeter", Symbol: "mm", Factor: 0.001},
			{ID: "micrometer", Label: "Micrometer (µm)", Name: "Micrometer", Symbol: "µm", Factor: 1e-6},
			{ID: "nanometer", Label: "Nanometer (nm)", Name: "Nanometer", Symbol: "nm", Factor: 1e-9},
			{ID: "mile", Label: "Mile (mi)", Name: "Mile", Symbol: "mi", Factor: 1609.344},
			{ID: "yard", Label: "Yard (yd)", Name: "Yard", Symbol: "yd", Factor: 0.9144},
			{ID: "foot", Label: "Foot (ft)", Name: "Foot", Symbol: "ft", Factor: 0.3048},
			{ID: "inch", Label: "Inch (in)", Name: "Inch", Symbol: "in", Factor: 0.0254},
			{ID: "nautical", Label: "Nautical Mile (nmi)", Name: "Nautical Mile", Symbol: "nmi", Factor: 1852},
			{ID: "lightyear", Label: "Light Year (ly)", Name: "Light Year", Symbol: "ly", Factor: 9.461e15},
			{ID: "furlong", Label: "Furlong", Name: "Furlong", Symbol: "fur", Factor: 201.168},
			{ID: "chain", Label: "Chain", Name: "Chain", Symbol: "ch", Factor: 20.1168},
		},
	},
	{
		ID: "temperature", Name: "Temperature", Kind: Temperature,
		Units: []Unit{
			{ID: "celsius", Label: "Celsius (°C)", Name: "Celsius", Symbol: "°C"},
			{ID: "fahrenheit", Label: "Fahrenheit (°F)", Name: "Fahrenheit", Symbol: "°F"},
			{ID: "kelvin", Label: "Kelvin (K)", Name: "Kelvin", Symbol: "K"},
			{ID: "rankine", Label: "Rankine (°R)", Name: "Rankine", Symbol: "°R"},
			{ID: "reaumur", Label: "Réaumur (°Ré)", Name: "Reaumur", Symbol: "°Re"},
		},
	},
	{
		ID: "area", Name: "Area", Kind: Linear,
		Units: []Unit{
			{ID: "sqmeter", Label: "Square Meter (m²)", Name: "Square Meter", Symbol: "m²", Factor: 1},
			{ID: "sqkilometer", Label: "Square Kilometer (km²)", Name: "Square Kilometer", Symbol: "km²", Factor: 1e6},
			{ID: "sqcentimeter", Label: "Square Centimeter (cm²)", Name: "Square Centimeter", Symbol: "cm²", Factor: 1e-4},
			{ID: "sqmillimeter", Label: "Square Millimeter (mm²)", Name: "Square Millimeter", Symbol: "mm²", Factor: 1e-6},
			{ID: "sqmicrometer", Label: "Square Micrometer (µm²)", Name: "Square Micrometer", Symbol: "µm²", Factor: 1e-12},
			{ID: "hectare", Label: "Hectare (ha)", Name: "Hectare", Symbol: "ha", Factor: 10000},
			{ID: "sqmile", Label: "Square Mile (mi²)", Name: "Square Mile", Symbol: "mi²", Factor: 2589988.11},
			{ID: "sqyard", Label: "Square Yard (yd²)", Name: "Square Yard", Symbol: "yd²", Factor: 0.836127},
			{ID: "sqfoot", Label: "Square Foot (ft²)", Name: "Square Foot", Symbol: "ft²", Factor: 0.092903},
			{ID: "sqinch", Label: "Square Inch (in²)", Name: "Square Inch", Symbol: "in²", Factor: 0.00064516},
			{ID: "acre", Label: "Acre", Name: "Acre", Symbol: "ac", Factor: 4046.856},
		},
	},
	{
		ID: "volume", Name: "Volume", Kind: Linear,
		Units: []Unit{
			{ID: "liter", Label: "Liter (L)", Name: "Liter", Symbol: "L", Factor: 1},
			{ID: "milliliter", Label: "Milliliter (mL)", Name: "Milliliter", Symbol: "mL", Factor: 0.001},
			{ID: "cubicmeter", Label: "Cubic Meter (m³)", Name: "Cubic Meter", Symbol: "m³", Factor: 1000},
			{ID: "cubicfoot", Label: "Cubic Foot (ft³)", Name: "Cubic Foot", Symbol: "ft³", Factor: 28.3168},
			{ID: "cubicinch", Label: "Cubic Inch (in³)", Name: "Cubic Inch", Symbol: "in³", Factor: 0.0163871},
			{ID: "cubicyard", Label: "Cubic Yard (yd³)", Name: "Cubic Yard", Symbol: "yd³", Factor: 764.555},
			{ID: "usgallon", Label: "US Gallon (gal)", Name: "US Gallon", Symbol: "gal", Factor: 3.78541},
			{ID: "ukgallon", Label: "UK Gallon (gal)", Name: "UK Gallon", Symbol: "gal", Factor: 4.54609},
			{ID: "usquart", Label: "US Quart (qt)", Name: "US Quart", Symbol: "qt", Factor: 0.946353},
			{ID: "uspint", Label: "US Pint (pt)", Name: "US Pint", Symbol: "pt", Factor: 0.473176},
			{ID: "uscup", Label: "US Cup", Name: "US Cup", Symbol: "cup", Factor: 0.236588},
			{ID: "usfloz", Label: "US Fluid Ounce (fl oz)", Name: "US Fluid Ounce", Symbol: "fl oz", Factor: 0.0295735},
			{ID: "tablespoon", Label: "Tablespoon (tbsp)", Name: "Tablespoon", Symbol: "tbsp", Factor: 0.0147868},
			{ID: "teaspoon", Label: "Teaspoon (tsp)", Name: "Teaspoon", Symbol: "tsp", Factor: 0.00492892},
		},
	},
	{
		ID: "weight", Name: "Weight", Kind: Linear,
		Units: []Unit{
			{ID: "kilogram", Label: "Kilogram (kg)", Name: "Kilogram", Symbol: "kg", Factor: 1},
			{ID: "gram", Label: "Gram (g)", Name: "Gram", Symbol: "g", Factor: 0.001},
			{ID: "milligram", Label: "Milligram (mg)", Name: "Milligram", Symbol: "mg", Factor: 1e-6},
			{ID: "microgram", Label: "Microgram (µg)", Name: "Microgram", Symbol: "µg", Factor: 1e-9},
			{ID: "tonne", Label: "Metric Ton (t)", Name: "Metric Ton", Symbol: "t", Factor: 1000},
			{ID: "pound", Label: "Pound (lb)", Name: "Pound", Symbol: "lb", Factor: 0.453592},
			{ID: "ounce", Label: "Ounce (oz)", Name: "Ounce", Symbol: "oz", Factor: 0.0283495},
			{ID: "stone", Label: "Stone (st)", Name: "Stone", Symbol: "st", Factor: 6.35029},
			{ID: "uston", Label: "US Ton (short ton)", Name: "US Ton", Symbol: "ton", Factor: 907.185},
			{ID: "ukton", Label: "UK Ton (long ton)", Name: "UK Ton", Symbol: "LT", Factor: 1016.05},
			{ID: "carat", Label: "Carat (ct)", Name: "Carat", Symbol: "ct", Factor: 0.0002},
		},
	},
	{
		ID: "time", Name: "Time", Kind: Linear,
		Units: []Unit{
			{ID: "second", Label: "Second (s)", Name: "Second", Symbol: "s", Factor: 1},
			{ID: "millisecond", Label: "Millisecond (ms)", Name: "Millisecond", Symbol: "ms", Factor: 0.001},
			{ID: "microsecond", Label: "Microsecond (µs)", Name: "Microsecond", Symbol: "µs", Factor: 1e-6},
			{ID: "nanosecond", Label: "Nanosecond (ns)", Name: "Nanosecond", Symbol: "ns", Factor: 1e-9},
			{ID: "minute", Label: "Minute (min)", Name: "Minute", Symbol: "min", Factor: 60},
			{ID: "hour", Label: "Hour (h)", Name: "Hour", Symbol: "h", Factor: 3600},
			{ID: "day", Label: "Day (d)", Name: "Day", Symbol: "d", Factor: 86400},
			{ID: "week", Label: "Week (wk)", Name: "Week", Symbol: "wk", Factor: 604800},
			{ID: "month", Label: "Month (avg)", Name: "Month", Symbol: "mo", Factor: 2629800},
			{ID: "year", Label: "Year (yr)", Name: "Year", Symbol: "yr", Factor: 31557600},
			{ID: "decade", Label: "Decade", Name: "Decade", Symbol: "dec", Factor: 315576000},
			{ID: "century", Label: "Century", Name: "Century", Symbol: "c", Factor: 3155760000},
		},
	},
	{
		ID: "speed", Name: "Speed", Kind: Linear,
		Units: []Unit{
			{ID: "mps", Label: "Meter/Second (m/s)", Name: "Meter per Second", Symbol: "m/s", Factor: 1},
			{ID: "kph", Label: "Kilometer/Hour (km/h)", Name: "Kilometer per Hour", Symbol: "km/h", Factor: 0.277778},
			{ID: "mph", Label: "Mile/Hour (mph)", Name: "Mile per Hour", Symbol: "mph", Factor: 0.44704},
			{ID: "fps", Label: "Foot/Second (ft/s)", Name: "Foot per Second", Symbol: "ft/s", Factor: 0.3048},
			{ID: "knot", Label: "Knot (kn)", Name: "Knot", Symbol: "kn", Factor: 0.514444},
			{ID: "mach", Label: "Mach (at sea level)", Name: "Mach", Symbol: "Ma", Factor: 340.29},
			{ID: "lightspeed", Label: "Speed of Light (c)", Name: "Speed of Light", Symbol: "c", Factor: 299792458},
		},
	},
	{
		ID: "pressure", Name: "Pressure", Kind: Linear,
		Units: []Unit{
			{ID: "pascal", Label: "Pascal (Pa)", Name: "Pascal", Symbol: "Pa", Factor: 1},
			{ID: "kilopascal", Label: "Kilopascal (kPa)", Name: "Kilopascal", Symbol: "kPa", Factor: 1000},
			{ID: "megapascal", Label: "Megapascal (MPa)", Name: "Megapascal", Symbol: "MPa", Factor: 1e6},
			{ID: "bar", Label: "Bar", Name: "Bar", Symbol: "bar", Factor: 100000},
			{ID: "millibar", Label: "Millibar (mbar)", Name: "Millibar", Symbol: "mbar", Factor: 100},
			{ID: "atm", Label: "Atmosphere (atm)", Name: "Atmosphere", Symbol: "atm", Factor: 101325},
			{ID: "psi", Label: "PSI (lb/in²)", Name: "PSI", Symbol: "psi", Factor: 6894.76},
			{ID: "torr", Label: "Torr (mmHg)", Name: "Torr", Symbol: "Torr", Factor: 133.322},
			{ID: "mmhg", Label: "Millimeter of Mercury", Name: "Millimeter of Mercury", Symbol: "mmHg", Factor: 133.322},
			{ID: "inhg", Label: "Inch of Mercury (inHg)", Name: "Inch of Mercury", Symbol: "inHg", Factor: 3386.39},
		},
	},
	{
		ID: "energy", Name: "Energy", Kind: Linear,
		Units: []Unit{
			{ID: "joule", Label: "Joule (J)", Name: "Joule", Symbol: "J", Factor: 1},
			{ID: "kilojoule", Label: "Kilojoule (kJ)", Name: "Kilojoule", Symbol: "kJ", Factor: 1000},
			{ID: "megajoule", Label: "Megajoule (MJ)", Name: "Megajoule", Symbol: "MJ", Factor: 1e6},
			{ID: "calorie", Label: "Calorie (cal)", Name: "Calorie", Symbol: "cal", Factor: 4.184},
			{ID: "kilocalorie", Label: "Kilocalorie (kcal)", Name: "Kilocalorie", Symbol: "kcal", Factor: 4184},
			{ID: "wh", Label: "Watt-Hour (Wh)", Name: "Watt-Hour", Symbol: "Wh", Factor: 3600},
			{ID: "kwh", Label: "Kilowatt-Hour (kWh)", Name: "Kilowatt-Hour", Symbol: "kWh", Factor: 3600000},
			{ID: "mwh", Label: "Megawatt-Hour (MWh)", Name: "Megawatt-Hour", Symbol: "MWh", Factor: 3.6e9},
			{ID: "btu", Label: "BTU (British Thermal)", Name: "BTU", Symbol: "BTU", Factor: 1055.06},
			{ID: "therm", Label: "Therm (US)", Name: "Therm", Symbol: "thm", Factor: 1.055e8},
			{ID: "ev", Label: "Electronvolt (eV)", Name: "Electronvolt", Symbol: "eV", Factor: 1.602e-19},
			{ID: "ftlb", Label: "Foot-Pound (ft·lb)", Name: "Foot-Pound", Symbol: "ft·lb", Factor: 1.35582},
		},
	},
}
