package channel

// GeneralMIDI is the General MIDI level 1 percussion key map (channel 10),
// split into low, mid and high registers.
var GeneralMIDI = Table{
	35: {"Acoustic Bass Drum", "low"},
	36: {"Bass Drum 1", "low"},
	37: {"Side Stick", "mid"},
	38: {"Acoustic Snare", "mid"},
	39: {"Hand Clap", "mid"},
	40: {"Electric Snare", "mid"},
	41: {"Low Floor Tom", "low"},
	42: {"Closed Hi-Hat", "high"},
	43: {"High Floor Tom", "low"},
	44: {"Pedal Hi-Hat", "high"},
	45: {"Low Tom", "mid"},
	46: {"Open Hi-Hat", "high"},
	47: {"Low-Mid Tom", "mid"},
	48: {"Hi-Mid Tom", "mid"},
	49: {"Crash Cymbal 1", "high"},
	50: {"High Tom", "mid"},
	51: {"Ride Cymbal 1", "high"},
	52: {"Chinese Cymbal", "high"},
	53: {"Ride Bell", "high"},
	54: {"Tambourine", "high"},
	55: {"Splash Cymbal", "high"},
	56: {"Cowbell", "high"},
	57: {"Crash Cymbal 2", "high"},
	58: {"Vibraslap", "high"},
	59: {"Ride Cymbal 2", "high"},
	60: {"Hi Bongo", "high"},
	61: {"Low Bongo", "mid"},
	62: {"Mute Hi Conga", "mid"},
	63: {"Open Hi Conga", "mid"},
	64: {"Low Conga", "low"},
	65: {"High Timbale", "mid"},
	66: {"Low Timbale", "mid"},
	67: {"High Agogo", "high"},
	68: {"Low Agogo", "high"},
	69: {"Cabasa", "high"},
	70: {"Maracas", "high"},
	71: {"Short Whistle", "high"},
	72: {"Long Whistle", "high"},
	73: {"Short Guiro", "high"},
	74: {"Long Guiro", "high"},
	75: {"Claves", "high"},
	76: {"Hi Wood Block", "high"},
	77: {"Low Wood Block", "high"},
	78: {"Mute Cuica", "high"},
	79: {"Open Cuica", "high"},
	80: {"Mute Triangle", "high"},
	81: {"Open Triangle", "high"},
}
