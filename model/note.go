package model

// NoteEvent is one sounded note. Pitch and velocity are MIDI values in
// [0,127]; times are seconds from the start of the recording.
type NoteEvent struct {
	Pitch    uint8
	Velocity uint8
	Start    float64
	End      float64
}

// NoteSequence is ordered by Start ascending, ties kept in insertion order.
type NoteSequence []NoteEvent

// InstrumentTrack attributes a note sequence to a single instrument.
type InstrumentTrack struct {
	Program uint8
	Name    string
	Notes   NoteSequence
}
