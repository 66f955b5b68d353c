package theory

import "testing"

func TestToneMIDI(t *testing.T) {
	tests := []struct {
		tone   Tone
		octave int
		want   int
	}{
		{Tone{Letter: 'C'}, 4, 60},
		{Tone{Letter: 'A'}, 4, 69},
		{Tone{Letter: 'G', Accidental: 1}, 4, 68},
		{Tone{Letter: 'C', Accidental: -1}, 4, 59},
		{Tone{Letter: 'B', Accidental: 1}, 4, 72},
		{Tone{Letter: 'C'}, -1, 0},
	}

	for _, tt := range tests {
		if got := tt.tone.MIDI(tt.octave); got != tt.want {
			t.Errorf("Tone %s octave %d MIDI = %d, want %d", tt.tone, tt.octave, got, tt.want)
		}
	}
}

func TestMidiNotesAscending(t *testing.T) {
	scale, err := ComputeScale("G#", 6, Major)
	if err != nil {
		t.Fatal(err)
	}

	notes := midiNotes(scale, DefaultOctave)
	if len(notes) != 8 {
		t.Fatalf("midiNotes returned %d notes, want 8", len(notes))
	}
	for i := 1; i < len(notes); i++ {
		if notes[i] <= notes[i-1] {
			t.Errorf("notes[%d] = %d not above notes[%d] = %d", i, notes[i], i-1, notes[i-1])
		}
	}
	if notes[len(notes)-1] != notes[0]+12 {
		t.Errorf("closing note = %d, want octave root %d", notes[len(notes)-1], notes[0]+12)
	}
}

func TestMidiNotesCMajor(t *testing.T) {
	scale, err := ComputeScale("C", 1, Major)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{60, 62, 64, 65, 67, 69, 71, 72}
	got := midiNotes(scale, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("midiNotes[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScaleSMF(t *testing.T) {
	scale, err := ComputeScale("C", 1, HarmonicMinor)
	if err != nil {
		t.Fatal(err)
	}

	data, err := ScaleSMF(scale, 90, DefaultOctave)
	if err != nil {
		t.Fatalf("ScaleSMF() error = %v", err)
	}
	if len(data) < 14 {
		t.Fatalf("ScaleSMF() returned %d bytes", len(data))
	}
	if string(data[:4]) != "MThd" {
		t.Errorf("header = % 02X, want MThd magic", data[:4])
	}
}

func TestScaleSMFDefaultsBPM(t *testing.T) {
	scale, err := ComputeScale("C", 1, Major)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ScaleSMF(scale, 0, DefaultOctave); err != nil {
		t.Errorf("ScaleSMF with zero bpm error = %v", err)
	}
}
