// Package theory computes diatonic modes of the major, melodic minor and
// harmonic minor scales, with music-notation-correct spellings
package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNote is returned when a note name cannot be parsed
var ErrInvalidNote = errors.New("invalid note")

// Tone is a spelled note: a natural letter A-G plus a signed accidental
// count (positive = sharps, negative = flats, zero = natural).
type Tone struct {
	Letter     byte
	Accidental int
}

// ParseTone parses a note name like "C", "g#", "Bbb" or "F###" into a Tone.
// The letter is case-insensitive. Accidentals must be a uniform run of
// either '#' or 'b'; mixing them is rejected.
func ParseTone(text string) (Tone, error) {
	if text == "" {
		return Tone{}, fmt.Errorf("%w: empty note name", ErrInvalidNote)
	}

	letter := text[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return Tone{}, fmt.Errorf("%w: letter must be A-G, got %q", ErrInvalidNote, string(text[0]))
	}

	if len(text) == 1 {
		return Tone{Letter: letter}, nil
	}

	acc := text[1]
	if acc != '#' && acc != 'b' {
		return Tone{}, fmt.Errorf("%w: accidental must be '#' or 'b', got %q", ErrInvalidNote, string(text[1]))
	}
	for i := 2; i < len(text); i++ {
		if text[i] != acc {
			return Tone{}, fmt.Errorf("%w: mixed accidentals in %q", ErrInvalidNote, text)
		}
	}

	offset := len(text) - 1
	if acc == 'b' {
		offset = -offset
	}
	return Tone{Letter: letter, Accidental: offset}, nil
}

// String renders the tone back to its canonical name: the letter followed
// by a run of '#' or 'b'. Inverse of ParseTone for canonical input.
func (t Tone) String() string {
	switch {
	case t.Accidental > 0:
		return string(t.Letter) + strings.Repeat("#", t.Accidental)
	case t.Accidental < 0:
		return string(t.Letter) + strings.Repeat("b", -t.Accidental)
	default:
		return string(t.Letter)
	}
}
