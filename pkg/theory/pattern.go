package theory

// Family selects one of the three seven-tone parent scales
type Family string

const (
	Major         Family = "major"
	MelodicMinor  Family = "melodic-minor"
	HarmonicMinor Family = "harmonic-minor"
)

// StepPattern is the ordered semitone distances between consecutive scale
// tones. Every pattern is a rotation of one of the three base patterns and
// always sums to 12.
type StepPattern [7]int

var basePatterns = map[Family]StepPattern{
	Major:         {2, 2, 1, 2, 2, 2, 1},
	MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
	HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
}

var modeNames = map[Family][7]string{
	Major: {"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"},
	MelodicMinor: {"Melodic Minor", "Dorian b2", "Lydian Augmented", "Lydian Dominant",
		"Mixolydian b6", "Locrian #2", "Altered"},
	HarmonicMinor: {"Harmonic Minor", "Locrian #6", "Ionian #5", "Dorian #4",
		"Phrygian Dominant", "Lydian #2", "Altered bb7"},
}

// Families lists the supported scale families
func Families() []Family {
	return []Family{Major, MelodicMinor, HarmonicMinor}
}

// ParseFamily maps a family name to a Family, defaulting to Major for
// anything unrecognized (mirrors the CLI default of neither minor flag set).
func ParseFamily(name string) Family {
	switch Family(name) {
	case MelodicMinor, HarmonicMinor:
		return Family(name)
	default:
		return Major
	}
}

// NormalizeMode wraps any integer mode into 1..7, cyclically. Mode 8 is
// mode 1 again, mode 0 is mode 7, and so on for negative values.
func NormalizeMode(mode int) int {
	return ((mode-1)%7+7)%7 + 1
}

// ModeName returns the conventional name of the given mode of a family
func ModeName(family Family, mode int) string {
	names, ok := modeNames[family]
	if !ok {
		names = modeNames[Major]
	}
	return names[NormalizeMode(mode)-1]
}

// SelectPattern returns the family's base step pattern left-rotated so that
// it starts from the requested mode's degree. Any integer mode is valid.
func SelectPattern(family Family, mode int) StepPattern {
	base, ok := basePatterns[family]
	if !ok {
		base = basePatterns[Major]
	}

	shift := NormalizeMode(mode) - 1
	var rotated StepPattern
	for i := range rotated {
		rotated[i] = base[(i+shift)%len(base)]
	}
	return rotated
}
