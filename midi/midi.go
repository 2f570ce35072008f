// Package midi renders flattened profiles as standard MIDI files so a
// contour can be auditioned or fed back into a sequencer.
package midi

import (
	"io"
	"math"
	"os"

	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// PercussionChannel is General MIDI channel 10, zero based.
const PercussionChannel = 9

type ExportOptions struct {
	Note    uint8
	Channel uint8
	BPM     float64
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{Note: 76, Channel: PercussionChannel, BPM: constants.ExportTempoBPM}
}

// Velocity maps a profile value in [0,1] to a note-on velocity. Zero is a rest.
func Velocity(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(1 + math.Round(v*126))
}

// Render builds a one-track file with a 16th note per non-zero step.
func Render(profile model.Profile, opts ExportOptions) (*smf.SMF, error) {
	clock := smf.MetricTicks(96)
	sixteenth := clock.Ticks16th()

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var delta uint32
	for _, v := range profile {
		vel := Velocity(v)
		if vel == 0 {
			delta += sixteenth
			continue
		}
		tr.Add(delta, midi.NoteOn(opts.Channel, opts.Note, vel))
		tr.Add(sixteenth, midi.NoteOff(opts.Channel, opts.Note))
		delta = 0
	}
	tr.Close(delta)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func Write(w io.Writer, profile model.Profile, opts ExportOptions) error {
	s, err := Render(profile, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func WriteFile(path string, profile model.Profile, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create midi file")
	}
	defer f.Close()
	return Write(f, profile, opts)
}
