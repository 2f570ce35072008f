package channel

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/pkg/errors"
)

// ReadTable decodes a table of the form {"36": ["Bass Drum 1", "low"]}.
// The second field of each record is the category tag.
func ReadTable(r io.Reader) (Table, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "could not decode classification table")
	}

	res := make(Table, len(raw))
	for k, record := range raw {
		note, err := strconv.Atoi(k)
		if err != nil || note <= 0 {
			return nil, errors.Errorf("invalid note id %q in classification table", k)
		}
		if len(record) < 2 {
			return nil, errors.Errorf("record for note %d needs a name and a category", note)
		}
		res[model.Note(note)] = Entry{Name: record[0], Category: record[1]}
	}
	return res, nil
}

func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open classification table")
	}
	defer f.Close()
	return ReadTable(f)
}

// LoadTableOrDefault loads path, or returns GeneralMIDI when path is empty.
func LoadTableOrDefault(path string) (Table, error) {
	if path == "" {
		return GeneralMIDI, nil
	}
	return LoadTable(path)
}
