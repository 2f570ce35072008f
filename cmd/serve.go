package cmd

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/flatten"
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var listenAddr string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", constants.GetListenAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves flattening over HTTP",
	Long:  `Serves POST /flatten, POST /counts and GET /table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Str("addr", listenAddr).Msg("listening")
		return http.ListenAndServe(listenAddr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/flatten", HandleFlatten).Methods("POST")
	router.HandleFunc("/counts", HandleCounts).Methods("POST")
	router.HandleFunc("/table", HandleTable).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("could not encode response")
	}
}

func writeError(w http.ResponseWriter, requestId string, err error) {
	log.Warn().Str("request_id", requestId).Err(err).Msg("rejected request")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func HandleFlatten(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()

	var input model.FlattenRequestBody
	body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		writeError(w, requestId, errors.Wrap(err, "could not unmarshal request body"))
		return
	}

	// missing modes fall back to the plain setting of each flag
	density, err := flatten.ParseDensity(defaultString(input.Density, "onset"))
	if err != nil {
		writeError(w, requestId, err)
		return
	}
	meter, err := flatten.ParseMeter(defaultString(input.Meter, "off"))
	if err != nil {
		writeError(w, requestId, err)
		return
	}
	sync, err := flatten.ParseSyncopation(defaultString(input.Syncopation, "none"))
	if err != nil {
		writeError(w, requestId, err)
		return
	}

	profile, err := flattener.Flatten(input.Pattern, density, meter, sync)
	if err != nil {
		writeError(w, requestId, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FlattenResponse{RequestId: requestId, Profile: profile})
}

func HandleCounts(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()

	var input model.CountsRequestBody
	body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		writeError(w, requestId, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	counts, err := classifier.Count(input.Pattern)
	if err != nil {
		writeError(w, requestId, err)
		return
	}
	writeJSON(w, http.StatusOK, model.CountsResponse{
		RequestId:         requestId,
		Counts:            counts,
		Salience:          flatten.Salience(counts),
		SyncopationPoints: flatten.SyncopationPoints(counts),
	})
}

func HandleTable(w http.ResponseWriter, r *http.Request) {
	table := classifier.Table()
	res := make([]model.TableEntry, 0, len(table))
	for note, entry := range table {
		res = append(res, model.TableEntry{Note: note, Name: entry.Name, Category: entry.Category})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Note < res[j].Note
	})
	writeJSON(w, http.StatusOK, res)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
