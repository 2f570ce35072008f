package model

// Note is a note identifier. 0 is a rest.
type Note = int

const Rest Note = 0

// Step holds the notes sounding together at one time position.
type Step = []Note

type Pattern = []Step

type Channel uint8

const (
	Low Channel = iota
	Mid
	High
)

const NumChannels = 3

var channelNames = [NumChannels]string{"low", "mid", "high"}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// ChannelCounts has one row per step and one column per Channel.
type ChannelCounts = [][NumChannels]float64

// Profile is the flattened, peak-normalized value per step.
type Profile = []float64
