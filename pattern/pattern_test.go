package pattern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`[[36, 42], [], [38, 42], [0]]`))
	require.NoError(t, err)
	assert.Equal(t, model.Pattern{{36, 42}, {}, {38, 42}, {0}}, p)
}

func TestParseRejectsNegativeNotes(t *testing.T) {
	_, err := Parse([]byte(`[[36], [-1]]`))
	assert.Error(t, err)
	_, err = Read(strings.NewReader(`[[-5]]`))
	assert.Error(t, err)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := Parse([]byte(`{"steps": 4}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beat.json")
	require.NoError(t, os.WriteFile(path, []byte("[[36],[42],[38],[42]]\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p, 4)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatProfile(t *testing.T) {
	assert.Equal(t, "|# #.|-|", FormatProfile(model.Profile{1, 0, 1, 0.2, 0.5}))
}

func TestFormatCounts(t *testing.T) {
	counts := model.ChannelCounts{{1, 0, 1}, {0, 0, 0}, {0, 2, 1}, {0, 0, 0}}
	want := "high |x-x-|\n" +
		"mid  |--2-|\n" +
		"low  |x---|\n"
	assert.Equal(t, want, FormatCounts(counts))
}
