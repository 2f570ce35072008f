package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log = zerolog.Nop()
	if err := Setup(""); err != nil {
		panic(err)
	}
}

func post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHandleFlattenPresence(t *testing.T) {
	w := post(t, "/flatten", model.FlattenRequestBody{
		Pattern: model.Pattern{{36}, {}, {38}, {}},
		Density: "presence",
	})

	assert := assert.New(t)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.FlattenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(model.Profile{1, 0, 1, 0}, res.Profile)
	assert.NotEmpty(res.RequestId)
}

func TestHandleFlattenAcceptsNumericCodes(t *testing.T) {
	w := post(t, "/flatten", model.FlattenRequestBody{
		Pattern:     model.Pattern{{36, 42}, {42}, {38, 42}, {42}},
		Density:     "1",
		Meter:       "1",
		Syncopation: "1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.FlattenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Profile, 4)
	assert.Equal(t, 1.0, res.Profile[0])
}

func TestHandleFlattenRejectsBadInput(t *testing.T) {
	cases := map[string]model.FlattenRequestBody{
		"unknown note":    {Pattern: model.Pattern{{36}, {200}}},
		"empty pattern":   {Pattern: model.Pattern{}},
		"unknown density": {Pattern: model.Pattern{{36}}, Density: "loud"},
		"unknown meter":   {Pattern: model.Pattern{{36}}, Meter: "waltz"},
		"unknown sync":    {Pattern: model.Pattern{{36}}, Syncopation: "7"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := post(t, "/flatten", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleFlattenRejectsOversizedBody(t *testing.T) {
	body := `{"pattern": [[` + strings.Repeat("36,", constants.MaxRequestBytes/3+1) + `36]]}`
	req := httptest.NewRequest(http.MethodPost, "/flatten", strings.NewReader(body))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "too large")
}

func TestHandleCounts(t *testing.T) {
	w := post(t, "/counts", model.CountsRequestBody{Pattern: model.Pattern{{}, {36, 42}, {}, {38}}})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.CountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert := assert.New(t)
	assert.Equal(model.ChannelCounts{{0, 0, 0}, {1, 0, 1}, {0, 0, 0}, {0, 1, 0}}, res.Counts)
	assert.Equal([]int{1, 3}, res.SyncopationPoints)
	assert.InDelta(1.0, res.Salience[0]+res.Salience[1]+res.Salience[2], 1e-9)
}

func TestHandleTable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/table", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.TableEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res)
	assert.Equal(t, model.TableEntry{Note: 35, Name: "Acoustic Bass Drum", Category: "low"}, res[0])
}
