package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tonescribe/tonescribe/model"
)

// ReadFile parses an SMF from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

// ReadNotes reconstructs note events from an SMF, pairing each NoteOn
// with the next NoteOff of the same pitch. Events come back ordered by
// start time, which for files produced by WriteTrack is track order.
func ReadNotes(filepath string) (model.NoteSequence, error) {
	s, err := ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var notes model.NoteSequence
	open := make(map[uint8]int)
	for _, track := range s.Tracks {
		var absTicks uint32
		for _, event := range track {
			absTicks += event.Delta
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				open[key] = len(notes)
				notes = append(notes, model.NoteEvent{
					Pitch:    key,
					Velocity: velocity,
					Start:    TicksToSeconds(absTicks),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				if i, ok := open[key]; ok {
					notes[i].End = TicksToSeconds(absTicks)
					delete(open, key)
				}
			}
		}
	}
	return notes, nil
}
