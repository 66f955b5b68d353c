package theory

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDI defaults
const (
	DefaultOctave = 4
	DefaultBPM    = 120.0

	ticksPerQuarter = 480
	noteVelocity    = 100
)

// MIDI returns the MIDI note number of the tone in the given octave
// (C4 = 60, middle C). Out-of-range spellings are clamped to 0-127.
func (t Tone) MIDI(octave int) int {
	n := (octave+1)*12 + naturalIndex[t.Letter] + t.Accidental
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return n
}

// midiNotes lays the scale out as an ascending run starting in the given
// octave, closing on the octave root. Tones whose raw number would fall at
// or below the previous one are lifted by octaves until the run ascends.
func midiNotes(scale Scale, octave int) []int {
	notes := make([]int, 0, len(scale)+1)
	for _, tone := range scale {
		n := tone.MIDI(octave)
		for len(notes) > 0 && n <= notes[len(notes)-1] {
			n += 12
		}
		notes = append(notes, n)
	}
	notes = append(notes, notes[0]+12)
	return notes
}

// ScaleSMF renders the scale as a single-track Standard MIDI File, one
// quarter note per degree at the given tempo, played ascending and closed
// with the octave root.
func ScaleSMF(scale Scale, bpm float64, octave int) ([]byte, error) {
	if bpm <= 0 {
		bpm = DefaultBPM
	}

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))

	for _, n := range midiNotes(scale, octave) {
		if n > 127 {
			n = 127
		}
		track.Add(0, midi.NoteOn(0, uint8(n), noteVelocity))
		track.Add(ticksPerQuarter, midi.NoteOff(0, uint8(n)))
	}
	track.Close(0)

	if err := sm.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}
