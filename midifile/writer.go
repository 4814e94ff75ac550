package midifile

import (
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tonescribe/tonescribe/constants"
	"github.com/tonescribe/tonescribe/model"
)

type tickEvent struct {
	tick     uint32
	pitch    uint8
	velocity uint8
	off      bool
}

// trackEvents flattens note events into an absolute-tick on/off list.
// On equal ticks the off comes first so back-to-back notes of the same
// pitch never interleave.
func trackEvents(notes model.NoteSequence) []tickEvent {
	evs := make([]tickEvent, 0, 2*len(notes))
	for _, n := range notes {
		evs = append(evs,
			tickEvent{tick: SecondsToTicks(n.Start), pitch: n.Pitch, velocity: n.Velocity},
			tickEvent{tick: SecondsToTicks(n.End), pitch: n.Pitch, off: true},
		)
	}
	sort.SliceStable(evs, func(i, j int) bool {
		if evs[i].tick != evs[j].tick {
			return evs[i].tick < evs[j].tick
		}
		return evs[i].off && !evs[j].off
	})
	return evs
}

// WriteTrack serializes a single instrument track into a format-0 SMF
// file at dest. The bytes are staged through dest+".tmp" and renamed,
// so a failed write leaves nothing at dest.
func WriteTrack(track model.InstrumentTrack, dest string) error {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(track.Name))
	tr.Add(0, smf.MetaTempo(constants.TempoBPM))
	tr.Add(0, midi.ProgramChange(0, track.Program))

	var lastTick uint32
	for _, ev := range trackEvents(track.Notes) {
		delta := ev.tick - lastTick
		if ev.off {
			tr.Add(delta, midi.NoteOff(0, ev.pitch))
		} else {
			tr.Add(delta, midi.NoteOn(0, ev.pitch, ev.velocity))
		}
		lastTick = ev.tick
	}
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)

	tmp := dest + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating midi file: %w", err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing midi file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing midi file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming midi file: %w", err)
	}
	return nil
}
