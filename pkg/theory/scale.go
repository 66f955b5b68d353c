package theory

import "strings"

// Scale is the seven tones of a mode, root first. The letters are always
// the seven naturals in cyclic order starting from the root's letter, each
// used exactly once.
type Scale [7]Tone

// naturalIndex places each natural letter on the 12-semitone lattice, so
// that E-F and B-C sit one semitone apart.
var naturalIndex = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func nextLetter(letter byte) byte {
	if letter == 'G' {
		return 'A'
	}
	return letter + 1
}

func pitchClass(n int) int {
	return ((n % 12) + 12) % 12
}

// Build derives the full scale from a root tone and a step pattern. Each
// subsequent tone takes the next natural letter; its accidental is the
// smallest adjustment that lands the letter on the pitch class reached by
// walking the pattern, trying +j before -j at each magnitude.
func Build(root Tone, pattern StepPattern) Scale {
	var scale Scale
	scale[0] = root

	for i := 1; i < len(scale); i++ {
		prev := scale[i-1]
		letter := nextLetter(prev.Letter)

		target := pitchClass(naturalIndex[prev.Letter] + prev.Accidental + pattern[i-1])
		base := naturalIndex[letter]

		offset := 0
		for j := 0; ; j++ {
			if pitchClass(base+j) == target {
				offset = j
				break
			}
			if pitchClass(base-j) == target {
				offset = -j
				break
			}
		}

		scale[i] = Tone{Letter: letter, Accidental: offset}
	}

	return scale
}

// ComputeScale parses the root note, selects the step pattern for the
// requested mode of the family, and builds the scale. The only failure is
// an unparseable root (ErrInvalidNote).
func ComputeScale(root string, mode int, family Family) (Scale, error) {
	tone, err := ParseTone(root)
	if err != nil {
		return Scale{}, err
	}
	return Build(tone, SelectPattern(family, mode)), nil
}

// String renders the scale as space-separated tone names, e.g.
// "G# A# B C# D# E F#".
func (s Scale) String() string {
	names := make([]string, len(s))
	for i, tone := range s {
		names[i] = tone.String()
	}
	return strings.Join(names, " ")
}
