package theory

import (
	"errors"
	"testing"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		input  string
		letter byte
		offset int
	}{
		{"C", 'C', 0},
		{"c", 'C', 0},
		{"g#", 'G', 1},
		{"F#", 'F', 1},
		{"Bb", 'B', -1},
		{"Abbb", 'A', -3},
		{"d###", 'D', 3},
		{"Ebb", 'E', -2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tone, err := ParseTone(tt.input)
			if err != nil {
				t.Fatalf("ParseTone(%q) error = %v", tt.input, err)
			}
			if tone.Letter != tt.letter {
				t.Errorf("ParseTone(%q) letter = %q, want %q", tt.input, tone.Letter, tt.letter)
			}
			if tone.Accidental != tt.offset {
				t.Errorf("ParseTone(%q) accidental = %d, want %d", tt.input, tone.Accidental, tt.offset)
			}
		})
	}
}

func TestParseToneInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a letter", "H"},
		{"digit", "1"},
		{"bad accidental", "Cx"},
		{"mixed sharp then flat", "C#b"},
		{"mixed flat then sharp", "cbb#"},
		{"accidental only", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTone(tt.input)
			if err == nil {
				t.Fatalf("ParseTone(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidNote) {
				t.Errorf("ParseTone(%q) error = %v, want ErrInvalidNote", tt.input, err)
			}
		})
	}
}

func TestToneString(t *testing.T) {
	tests := []struct {
		tone Tone
		want string
	}{
		{Tone{Letter: 'C'}, "C"},
		{Tone{Letter: 'G', Accidental: 1}, "G#"},
		{Tone{Letter: 'B', Accidental: -2}, "Bbb"},
		{Tone{Letter: 'F', Accidental: 3}, "F###"},
	}

	for _, tt := range tests {
		if got := tt.tone.String(); got != tt.want {
			t.Errorf("Tone%+v.String() = %q, want %q", tt.tone, got, tt.want)
		}
	}
}

func TestParseToneRoundTrip(t *testing.T) {
	// Canonical names survive parse-then-format unchanged
	for _, name := range []string{"C", "G#", "Bb", "Abbb", "D##", "E", "F####"} {
		tone, err := ParseTone(name)
		if err != nil {
			t.Fatalf("ParseTone(%q) error = %v", name, err)
		}
		if got := tone.String(); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}
