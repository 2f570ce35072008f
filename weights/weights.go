// Package weights holds the fixed per-position metrical and syncopation
// strengths of a 16-step bar of 16th notes.
package weights

import (
	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/util"
)

// MeterStrength follows the GTTM metrical hierarchy: downbeat, half bar,
// quarters, eighths.
var MeterStrength = [constants.CycleLength]float64{4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0}

var SyncStrength = [constants.CycleLength]float64{0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 4}

// Positions are always reduced modulo the table length, never the pattern
// length, so a 12 or 32 step pattern reads the same bar-relative weights.

func Meter(step int) float64 {
	return MeterStrength[util.Mod(step, constants.CycleLength)]
}

func Sync(step int) float64 {
	return SyncStrength[util.Mod(step, constants.CycleLength)]
}

// Next is the cyclic successor of step in a pattern of length n.
func Next(step, n int) int {
	return util.Mod(step+1, n)
}

// IsSyncPosition reports whether step outweighs its cyclic successor in a
// pattern of length n, i.e. an onset there is left hanging by a rest.
func IsSyncPosition(step, n int) bool {
	return Sync(step) > Sync(Next(step, n))
}
