package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRegistration(t *testing.T) {
	before := testutil.ToFloat64(MembersRegisteredTotal)
	RecordRegistration()
	assert.Equal(t, before+1, testutil.ToFloat64(MembersRegisteredTotal))
}

func TestRecordTrackingDay(t *testing.T) {
	before := testutil.ToFloat64(TrackingDaysGeneratedTotal)
	RecordTrackingDay()
	assert.Equal(t, before+1, testutil.ToFloat64(TrackingDaysGeneratedTotal))
}

func TestRecordAggregation(t *testing.T) {
	counter := AggregationsTotal.WithLabelValues("FatDogGym")
	before := testutil.ToFloat64(counter)
	RecordAggregation("FatDogGym")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("GET", "/users/", "200")
	before := testutil.ToFloat64(counter)
	RecordHTTPRequest("GET", "/users/", "200", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
