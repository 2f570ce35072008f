// Package flatten reduces a polyphonic step pattern to a one-dimensional
// rhythmic profile with one peak-normalized salience value per step.
package flatten

import (
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/peter-clark/polyphonic-rhythmic-contour/weights"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

var ErrEmptyPattern = errors.New("pattern has no steps")

// Counter builds the channel count matrix of a pattern.
// *channel.Classifier is the usual implementation.
type Counter interface {
	Count(pattern model.Pattern) (model.ChannelCounts, error)
}

// Flattener holds no mutable state and may be shared between goroutines.
type Flattener struct {
	counter        Counter
	log            zerolog.Logger
	onsetBroadcast bool
}

type Option func(*Flattener)

func WithLogger(l zerolog.Logger) Option {
	return func(f *Flattener) {
		f.log = l
	}
}

// WithOnsetBroadcast makes plain onset density (no meter, no syncopation)
// assign the pattern-wide sum of step densities to every step, which gives
// a constant profile. The default is a per-step density.
func WithOnsetBroadcast() Option {
	return func(f *Flattener) {
		f.onsetBroadcast = true
	}
}

func New(counter Counter, opts ...Option) *Flattener {
	f := &Flattener{counter: counter, log: zlog.Logger}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Flatten computes the profile of pattern. An all-rest pattern yields an
// all-zero profile.
func (f *Flattener) Flatten(pattern model.Pattern, density Density, meter Meter, sync Syncopation) (model.Profile, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	counts, err := f.counter.Count(pattern)
	if err != nil {
		return nil, err
	}
	return f.FlattenCounts(counts, density, meter, sync)
}

// FlattenCounts is Flatten for an already counted pattern.
func (f *Flattener) FlattenCounts(counts model.ChannelCounts, density Density, meter Meter, sync Syncopation) (model.Profile, error) {
	mode, ok := densityModes[density]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDensity, "%d", int(density))
	}
	if meter != MeterOff && meter != MeterGTTM {
		return nil, errors.Wrapf(ErrUnknownMeter, "%d", int(meter))
	}
	switch sync {
	case SyncNone, SyncMono:
	case SyncPoly:
		f.log.Warn().Str("density", density.String()).Msg("polyphonic syncopation is not supported, ignoring it")
		sync = SyncNone
	default:
		return nil, errors.Wrapf(ErrUnknownSyncopation, "%d", int(sync))
	}
	if len(counts) == 0 {
		return nil, ErrEmptyPattern
	}

	raw := f.raw(counts, mode, meter, sync)
	profile := normalize(raw)
	f.log.Debug().
		Str("density", density.String()).
		Str("meter", meter.String()).
		Str("syncopation", sync.String()).
		Int("steps", len(counts)).
		Msg("flattened pattern")
	return profile, nil
}

// raw is the profile before peak normalization.
func (f *Flattener) raw(counts model.ChannelCounts, mode densityMode, meter Meter, sync Syncopation) []float64 {
	if meter == MeterOff && sync == SyncNone {
		return mode.plain(f, counts)
	}

	n := len(counts)
	vals := mode.values(counts)
	out := make([]float64, n)
	for s := range vals {
		total := floats.Sum(vals[s][:])
		if mode.keepBase {
			out[s] = total
		}
		if meter == MeterGTTM && total > 0 {
			out[s] += weights.Meter(s) * total
		}
		if sync == SyncMono && weights.IsSyncPosition(s, n) {
			syncopated := syncopatedChannels(vals[s], vals[weights.Next(s, n)])
			if len(syncopated) == 0 {
				continue
			}
			var hit float64
			if mode.wholeStepSync {
				hit = total
			} else {
				for _, c := range syncopated {
					hit += vals[s][c]
				}
			}
			out[s] += weights.Sync(s) * hit
		}
	}
	return out
}

func normalize(raw []float64) model.Profile {
	profile := make(model.Profile, len(raw))
	if len(raw) == 0 {
		return profile
	}
	peak := floats.Max(raw)
	if peak == 0 {
		return profile
	}
	for i, v := range raw {
		profile[i] = v / peak
	}
	return profile
}

// syncopatedChannels lists the channels sounding in step but silent in next.
func syncopatedChannels(step, next [model.NumChannels]float64) []model.Channel {
	var res []model.Channel
	for c := range step {
		if step[c] > 0 && next[c] == 0 {
			res = append(res, model.Channel(c))
		}
	}
	return res
}

// SyncopationPoints returns the steps of counts whose onsets are followed by
// silence in the same channel at a metrically weaker successor.
func SyncopationPoints(counts model.ChannelCounts) []int {
	res := []int{}
	n := len(counts)
	for s := range counts {
		if !weights.IsSyncPosition(s, n) {
			continue
		}
		if len(syncopatedChannels(counts[s], counts[weights.Next(s, n)])) > 0 {
			res = append(res, s)
		}
	}
	return res
}

// Salience weights each channel by the inverse of its share of all notes in
// counts, normalized to sum to 1. Channels that never sound get 0.
func Salience(counts model.ChannelCounts) [model.NumChannels]float64 {
	var totals, sal [model.NumChannels]float64
	for _, row := range counts {
		floats.Add(totals[:], row[:])
	}
	total := floats.Sum(totals[:])
	if total == 0 {
		return sal
	}
	for c, t := range totals {
		if t > 0 {
			sal[c] = 1 / (t / total)
		}
	}
	floats.Scale(1/floats.Sum(sal[:]), sal[:])
	return sal
}

func rowSums(m model.ChannelCounts) []float64 {
	res := make([]float64, len(m))
	for i := range m {
		res[i] = floats.Sum(m[i][:])
	}
	return res
}

func broadcast(base []float64) []float64 {
	total := floats.Sum(base)
	res := make([]float64, len(base))
	for i := range res {
		res[i] = total
	}
	return res
}

// scaleToPeakRow divides m by its largest row sum.
func scaleToPeakRow(m model.ChannelCounts) model.ChannelCounts {
	res := make(model.ChannelCounts, len(m))
	peak := 0.0
	if len(m) > 0 {
		peak = floats.Max(rowSums(m))
	}
	if peak == 0 {
		return res
	}
	for i, row := range m {
		for c := range row {
			res[i][c] = row[c] / peak
		}
	}
	return res
}

func onsetValues(counts model.ChannelCounts) model.ChannelCounts {
	return scaleToPeakRow(counts)
}

func weighted(counts model.ChannelCounts) model.ChannelCounts {
	res := make(model.ChannelCounts, len(counts))
	for i, row := range counts {
		for c := range row {
			res[i][c] = row[c] * channelWeights[c]
		}
	}
	return res
}

func relativeValues(counts model.ChannelCounts) model.ChannelCounts {
	sal := Salience(counts)
	res := make(model.ChannelCounts, len(counts))
	for i, row := range counts {
		for c := range row {
			res[i][c] = row[c] * sal[c]
		}
	}
	return res
}

// presence collapses each step to a single low-channel onset if anything
// sounds there.
func presence(counts model.ChannelCounts) model.ChannelCounts {
	res := make(model.ChannelCounts, len(counts))
	for i, row := range counts {
		if floats.Sum(row[:]) > 0 {
			res[i][model.Low] = 1
		}
	}
	return res
}
