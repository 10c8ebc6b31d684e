package utils

import (
	"encoding/json"
	"net/http"

	"backstage-api/pkg/apperr"
	"backstage-api/pkg/metrics"
)

// ResponseJSON writes data as the JSON body with the given status.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ResponseError writes a mapped error verbatim.
func ResponseError(w http.ResponseWriter, resp apperr.Response) {
	metrics.RecordErrorResponse(resp.Code)
	ResponseJSON(w, resp.Status, resp)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter) {
	ResponseError(w, apperr.Map(apperr.Forbidden()))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, apperr.Map(&apperr.Error{Kind: apperr.KindInternal}))
}
