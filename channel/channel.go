package channel

import (
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/peter-clark/polyphonic-rhythmic-contour/util"
	"github.com/pkg/errors"
)

var ErrUnknownNote = errors.New("note is not in the classification table")

// Entry is a classification table record. Category is "low", "mid" or
// anything else, which counts as high.
type Entry struct {
	Name     string
	Category string
}

type Table = map[model.Note]Entry

// Classifier maps notes to frequency channels using a read-only table.
// It is safe for concurrent use.
type Classifier struct {
	table Table
}

func New(table Table) *Classifier {
	return &Classifier{table: table}
}

func (c *Classifier) Table() Table {
	return c.table
}

// Classify returns the channel of note. ok is false for rests.
func (c *Classifier) Classify(note model.Note) (ch model.Channel, ok bool, err error) {
	if note == model.Rest {
		return 0, false, nil
	}
	entry, found := c.table[note]
	if !found {
		return 0, false, errors.Wrapf(ErrUnknownNote, "note %d", note)
	}
	switch entry.Category {
	case "low":
		return model.Low, true, nil
	case "mid":
		return model.Mid, true, nil
	default:
		return model.High, true, nil
	}
}

// Count returns the onset count matrix of pattern. Several notes of one
// step in the same channel all count.
func (c *Classifier) Count(pattern model.Pattern) (model.ChannelCounts, error) {
	counts := make(model.ChannelCounts, len(pattern))
	for i, step := range pattern {
		for _, note := range util.FilterZeros(step) {
			ch, _, err := c.Classify(note)
			if err != nil {
				return nil, errors.Wrapf(err, "step %d", i)
			}
			counts[i][ch]++
		}
	}
	return counts, nil
}
