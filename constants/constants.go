package constants

import "os"

// GetTablePath returns the classification table to load instead of the
// built-in General MIDI percussion table. Empty means built-in.
func GetTablePath() string {
	return os.Getenv("TABLE_PATH")
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetOutDir() string {
	path := os.Getenv("OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// CycleLength is the length of the metrical and syncopation weight tables.
const CycleLength = 16

const ExportTempoBPM = 120.0

// MaxRequestBytes caps HTTP request bodies.
const MaxRequestBytes = 1 << 20
