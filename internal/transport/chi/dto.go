package chi

import "encoding/json"

type statusResponse struct {
	Status string `json:"status"`
}

type checkHealthResponse struct {
	AppStatus          statusResponse `json:"app_status"`
	SearchEngineStatus string         `json:"search_engine_status"`
	Error              string         `json:"error,omitempty"`
}

type refreshDataResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Guides  int    `json:"guides"`
}

type refreshSynonymsResponse struct {
	Message string `json:"message"`
	Groups  int    `json:"groups"`
}

type allDocsResponse struct {
	Results []json.RawMessage `json:"results"`
	Total   int               `json:"total"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
}

type errorResponse struct {
	Error string `json:"error"`
}
