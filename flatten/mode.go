package flatten

import (
	"strconv"
	"strings"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/pkg/errors"
)

type Density int

const (
	Onset Density = iota
	Weighted
	Relative
	Presence
)

type Meter int

const (
	MeterOff Meter = iota
	MeterGTTM
)

type Syncopation int

const (
	SyncNone Syncopation = iota
	SyncMono
	// SyncPoly is accepted but not implemented; it contributes nothing.
	SyncPoly
)

var (
	ErrUnknownDensity     = errors.New("unknown density type")
	ErrUnknownMeter       = errors.New("unknown meter type")
	ErrUnknownSyncopation = errors.New("unknown syncopation type")
)

var densityNames = []string{"onset", "weighted", "relative", "presence"}
var meterNames = []string{"off", "gttm"}
var syncNames = []string{"none", "mono", "poly"}

func (d Density) String() string     { return nameOf(densityNames, int(d)) }
func (m Meter) String() string       { return nameOf(meterNames, int(m)) }
func (s Syncopation) String() string { return nameOf(syncNames, int(s)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return strconv.Itoa(i)
	}
	return names[i]
}

// parseCode accepts either a name from names or its numeric code.
func parseCode(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if s == name {
			return i, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= len(names) {
		return 0, false
	}
	return n, true
}

func ParseDensity(s string) (Density, error) {
	n, ok := parseCode(densityNames, s)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownDensity, "%q", s)
	}
	return Density(n), nil
}

func ParseMeter(s string) (Meter, error) {
	n, ok := parseCode(meterNames, s)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownMeter, "%q", s)
	}
	return Meter(n), nil
}

func ParseSyncopation(s string) (Syncopation, error) {
	n, ok := parseCode(syncNames, s)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSyncopation, "%q", s)
	}
	return Syncopation(n), nil
}

// channelWeights are the WEIGHTED mode multipliers for low, mid and high.
var channelWeights = [model.NumChannels]float64{3, 2, 1}

// densityMode is one flattening strategy.
type densityMode struct {
	// values gives the per-step, per-channel magnitudes meter and
	// syncopation bonuses are computed from.
	values func(counts model.ChannelCounts) model.ChannelCounts
	// plain is the output when no bonus is requested.
	plain func(f *Flattener, counts model.ChannelCounts) []float64
	// keepBase adds the row sums of values under any bonus.
	keepBase bool
	// wholeStepSync credits the whole step at a syncopation point rather
	// than only the channels that are syncopated.
	wholeStepSync bool
}

var densityModes = map[Density]densityMode{
	Onset: {
		values: onsetValues,
		plain: func(f *Flattener, counts model.ChannelCounts) []float64 {
			base := rowSums(onsetValues(counts))
			if f.onsetBroadcast {
				return broadcast(base)
			}
			return base
		},
		wholeStepSync: true,
	},
	Weighted: {
		values: func(counts model.ChannelCounts) model.ChannelCounts {
			return scaleToPeakRow(weighted(counts))
		},
		plain: func(_ *Flattener, counts model.ChannelCounts) []float64 {
			return rowSums(weighted(counts))
		},
	},
	Relative: {
		values: relativeValues,
		plain: func(_ *Flattener, counts model.ChannelCounts) []float64 {
			return rowSums(relativeValues(counts))
		},
	},
	Presence: {
		values: presence,
		plain: func(_ *Flattener, counts model.ChannelCounts) []float64 {
			return rowSums(presence(counts))
		},
		keepBase:      true,
		wholeStepSync: true,
	},
}
