// Package pattern loads step patterns and prints them for the command line.
package pattern

import (
	"encoding/json"
	"io"
	"os"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/pkg/errors"
)

// Read decodes a pattern written as a JSON array of steps, each step an
// array of note ids, e.g. [[36, 42], [], [38, 42], [0]].
func Read(r io.Reader) (model.Pattern, error) {
	var p model.Pattern
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "could not decode pattern")
	}
	return validate(p)
}

func Parse(data []byte) (model.Pattern, error) {
	var p model.Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "could not decode pattern")
	}
	return validate(p)
}

func Load(path string) (model.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open pattern")
	}
	defer f.Close()
	return Read(f)
}

func validate(p model.Pattern) (model.Pattern, error) {
	for i, step := range p {
		for _, note := range step {
			if note < 0 {
				return nil, errors.Errorf("step %d has negative note id %d", i, note)
			}
		}
	}
	return p, nil
}
