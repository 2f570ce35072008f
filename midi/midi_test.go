package midi

import (
	"bytes"
	"testing"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestVelocity(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(0), Velocity(0))
	assert.Equal(uint8(127), Velocity(1))
	assert.Equal(uint8(64), Velocity(0.5))
	assert.Equal(uint8(127), Velocity(3))
}

func TestWriteRendersOneNotePerSoundingStep(t *testing.T) {
	var buf bytes.Buffer
	profile := model.Profile{1, 0, 0.5, 0, 0, 0, 0.25, 0}
	require.NoError(t, Write(&buf, profile, DefaultExportOptions()))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	sixteenth := int64(s.TimeFormat.(smf.MetricTicks).Ticks16th())
	var absTicks int64
	var starts []int64
	var velocities []uint8
	for _, event := range s.Tracks[0] {
		absTicks += int64(event.Delta)
		var channel, key, velocity uint8
		if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
			assert.Equal(t, uint8(PercussionChannel), channel)
			assert.Equal(t, uint8(76), key)
			starts = append(starts, absTicks/sixteenth)
			velocities = append(velocities, velocity)
		}
	}

	assert.Equal(t, []int64{0, 2, 6}, starts)
	assert.Equal(t, []uint8{127, 64, 33}, velocities)
}
