package model

type FlattenRequestBody struct {
	Pattern     Pattern `json:"pattern"`
	Density     string  `json:"density"`
	Meter       string  `json:"meter"`
	Syncopation string  `json:"syncopation"`
}

type FlattenResponse struct {
	RequestId string  `json:"request_id"`
	Profile   Profile `json:"profile"`
}

type CountsRequestBody struct {
	Pattern Pattern `json:"pattern"`
}

type CountsResponse struct {
	RequestId         string               `json:"request_id"`
	Counts            ChannelCounts        `json:"counts"`
	Salience          [NumChannels]float64 `json:"salience"`
	SyncopationPoints []int                `json:"syncopation_points"`
}

type TableEntry struct {
	Note     Note   `json:"note"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
