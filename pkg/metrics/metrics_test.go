package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/db/music-halls/{id}", "404"))

	ObserveRequest("GET", "/db/music-halls/{id}", http.StatusNotFound, 0.01)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/db/music-halls/{id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordErrorResponse(t *testing.T) {
	before := testutil.ToFloat64(errorResponses.WithLabelValues("FORBIDDEN"))

	RecordErrorResponse("FORBIDDEN")
	RecordErrorResponse("FORBIDDEN")

	assert.Equal(t, before+2, testutil.ToFloat64(errorResponses.WithLabelValues("FORBIDDEN")))
}

func TestInFlight(t *testing.T) {
	base := testutil.ToFloat64(httpInFlight)

	RequestStarted()
	assert.Equal(t, base+1, testutil.ToFloat64(httpInFlight))
	RequestFinished()
	assert.Equal(t, base, testutil.ToFloat64(httpInFlight))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordErrorResponse("MUSIC_HALL_NOT_FOUND")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `backstage_http_error_responses_total{code="MUSIC_HALL_NOT_FOUND"}`)
}
